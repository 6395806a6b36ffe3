// Package task provides a minimal future over a goroutine for running
// blocking calls off the caller's goroutine.
//
// The runtime's own scheduler is the executor: every offloaded call
// gets its own goroutine, and no pool sizing or queueing policy is
// imposed here. Callers that need to bound concurrency should do so
// with a semaphore around Offload.
package task

import "context"

// Task represents the in-flight result of an offloaded call.
// A Task is resolved exactly once and may be waited on by any number
// of goroutines.
type Task[T any] struct {
	done chan struct{}

	val      T
	err      error
	panicked bool
	panicVal any
}

// Offload runs fn on its own goroutine and returns a Task that
// resolves with fn's result.
//
// The caller's context is captured at call time and handed to fn, so
// request-scoped values cross the goroutine boundary explicitly.
// Offload itself never blocks.
func Offload[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.panicked = true
				t.panicVal = r
			}
		}()
		t.val, t.err = fn(ctx)
	}()

	return t
}

// Resolved returns a Task that is already complete with the given
// result. Useful in tests and as a zero-cost adapter.
func Resolved[T any](val T, err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), val: val, err: err}
	close(t.done)
	return t
}

// Done returns a channel that is closed when the task completes.
// It allows a Task to take part in a select statement.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes and returns its result.
// The error is the one returned by the offloaded call, unchanged.
// If the offloaded call panicked, Wait re-panics with the original
// panic value.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	if t.panicked {
		panic(t.panicVal)
	}
	return t.val, t.err
}

// Await blocks until the task completes or ctx is done, whichever
// comes first. When ctx wins, Await returns ctx.Err() and the
// offloaded call keeps running to completion on its goroutine; there
// is no way to interrupt it once scheduled. Its result can still be
// collected by a later Wait or Await.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.Wait()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
