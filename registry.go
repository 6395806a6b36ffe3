// Package awsasync provides the operation registry behind dynamic dispatch.
//
// The registry is deliberately static: operations are declared once in
// operationNames and bound once in syncBindings, rather than being
// discovered by reflection over the SDK client. Asyncify joins the two
// tables through the casing rules, so a mismatch between a declared
// operation and its conventionally-named binding fails loudly instead
// of silently skipping.
package awsasync

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rafidka/awsasync/errors"
	"github.com/rafidka/awsasync/internal/s3api"
	"github.com/rafidka/awsasync/task"
)

// AsyncSuffix is appended to an operation's conventional method name
// to form the name of its async binding ("list_buckets" becomes
// "list_buckets_async").
const AsyncSuffix = "_async"

// invoker is a type-erased synchronous operation call.
type invoker func(ctx context.Context, params any) (any, error)

// asyncInvoker schedules a type-erased operation call on its own
// goroutine and returns the in-flight task.
type asyncInvoker func(ctx context.Context, params any) *task.Task[any]

// operationNames lists the canonical operation identifiers the client
// declares, as named by the service. This is the service-model side of
// augmentation; syncBindings is the method side.
var operationNames = []string{
	"AbortMultipartUpload",
	"CompleteMultipartUpload",
	"CopyObject",
	"CreateBucket",
	"CreateMultipartUpload",
	"DeleteBucket",
	"DeleteObject",
	"DeleteObjects",
	"GetObject",
	"HeadBucket",
	"HeadObject",
	"ListBuckets",
	"ListObjectsV2",
	"PutObject",
	"UploadPart",
	"UploadPartCopy",
}

// bind adapts a typed SDK operation to the type-erased invoker shape.
// A nil params value is forwarded as the operation's zero input, which
// the SDK accepts.
func bind[In, Out any](
	fn func(context.Context, In, ...func(*s3.Options)) (Out, error),
) invoker {
	return func(ctx context.Context, params any) (any, error) {
		var in In
		if params != nil {
			typed, ok := params.(In)
			if !ok {
				return nil, errors.ErrInvalidParams
			}
			in = typed
		}
		return fn(ctx, in)
	}
}

// syncBindings registers one invoker per operation under the
// conventional snake_case method name. The keys here must match what
// casing.ToSnake derives from operationNames; Asyncify enforces that.
func syncBindings(api s3api.S3API) map[string]invoker {
	return map[string]invoker{
		"abort_multipart_upload":    bind(api.AbortMultipartUpload),
		"complete_multipart_upload": bind(api.CompleteMultipartUpload),
		"copy_object":               bind(api.CopyObject),
		"create_bucket":             bind(api.CreateBucket),
		"create_multipart_upload":   bind(api.CreateMultipartUpload),
		"delete_bucket":             bind(api.DeleteBucket),
		"delete_object":             bind(api.DeleteObject),
		"delete_objects":            bind(api.DeleteObjects),
		"get_object":                bind(api.GetObject),
		"head_bucket":               bind(api.HeadBucket),
		"head_object":               bind(api.HeadObject),
		"list_buckets":              bind(api.ListBuckets),
		"list_objects_v2":           bind(api.ListObjectsV2),
		"put_object":                bind(api.PutObject),
		"upload_part":               bind(api.UploadPart),
		"upload_part_copy":          bind(api.UploadPartCopy),
	}
}

// Operations returns the canonical operation identifiers declared by
// the client, sorted.
func (c *Client) Operations() []string {
	ops := make([]string, len(operationNames))
	copy(ops, operationNames)
	return ops
}

// Methods returns every registered method name on the client, sync and
// async, sorted. Async names only appear after Asyncify has run.
func (c *Client) Methods() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.syncOps)+len(c.asyncOps))
	for name := range c.syncOps {
		names = append(names, name)
	}
	for name := range c.asyncOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
