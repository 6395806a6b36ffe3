// Package awsasync augments the AWS SDK for Go v2 S3 client with
// asynchronous sibling methods.
//
// Every synchronous operation on the wrapped client gets a typed
// *Async variant that runs the blocking call on its own goroutine and
// returns a task.Task to wait on, plus a string-keyed binding under
// the operation's conventional snake_case name with an "_async"
// suffix for dynamic dispatch.
//
// The module adds no networking, retry, or credential logic of its
// own; all of that stays with the SDK. Wrapped calls propagate the
// SDK's errors unchanged, and waiting on a task cannot interrupt a
// call that is already running.
//
// Example:
//
//	client, err := awsasync.New(awsasync.WithRegion("us-west-2"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	t := client.ListBucketsAsync(ctx, &s3.ListBucketsInput{})
//	// ... do other work ...
//	out, err := t.Wait()
package awsasync
