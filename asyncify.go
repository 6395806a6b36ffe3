package awsasync

import (
	"context"
	"strings"

	"github.com/rafidka/awsasync/casing"
	"github.com/rafidka/awsasync/errors"
	"github.com/rafidka/awsasync/task"
)

// Asyncify attaches an async binding for every operation the client
// declares. For each canonical operation name it derives the
// conventional snake_case method name, looks up the synchronous
// binding under that exact name, wraps it to run on its own goroutine,
// and registers the wrapper under "<name>_async". The same client is
// returned.
//
// A declared operation without a matching synchronous binding means
// the naming convention assumption is violated; Asyncify stops there
// and returns an error wrapping ErrUnknownOperation. Bindings attached
// before the failure remain attached.
//
// Calling Asyncify again re-derives every binding from the still
// present synchronous ones, so repeated augmentation is safe: async
// bindings are overwritten, never wrapped twice.
func Asyncify(c *Client) (*Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.asyncOps == nil {
		c.asyncOps = make(map[string]asyncInvoker, len(operationNames))
	}

	for _, op := range operationNames {
		name := casing.ToSnake(op)
		inv, ok := c.syncOps[name]
		if !ok {
			return c, errors.NewMethodError("asyncify", name, errors.ErrUnknownOperation)
		}
		c.asyncOps[name+AsyncSuffix] = wrapAsync(inv)
	}

	return c, nil
}

// wrapAsync turns a synchronous invoker into one that offloads the
// call. The caller's context and params are captured per invocation;
// nothing is shared between invocations.
func wrapAsync(inv invoker) asyncInvoker {
	return func(ctx context.Context, params any) *task.Task[any] {
		return task.Offload(ctx, func(ctx context.Context) (any, error) {
			return inv(ctx, params)
		})
	}
}

// Call invokes an operation synchronously by its conventional method
// name (e.g. "list_buckets"). Errors from the underlying SDK call are
// returned unchanged.
func (c *Client) Call(ctx context.Context, name string, params any) (any, error) {
	c.mu.RLock()
	inv, ok := c.syncOps[name]
	c.mu.RUnlock()

	if !ok {
		return nil, errors.NewMethodError("call", name, errors.ErrUnknownMethod)
	}
	return inv(ctx, params)
}

// CallAsync invokes an operation's async binding and returns the
// in-flight task. The name may be the conventional method name
// ("list_buckets") or the full async name ("list_buckets_async").
//
// The returned task resolves with exactly what the synchronous call
// would have returned for the same arguments.
func (c *Client) CallAsync(ctx context.Context, name string, params any) (*task.Task[any], error) {
	if !strings.HasSuffix(name, AsyncSuffix) {
		name += AsyncSuffix
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.asyncOps) == 0 {
		return nil, errors.NewMethodError("call_async", name, errors.ErrNotAsyncified)
	}
	inv, ok := c.asyncOps[name]
	if !ok {
		return nil, errors.NewMethodError("call_async", name, errors.ErrUnknownMethod)
	}
	return inv(ctx, params), nil
}
