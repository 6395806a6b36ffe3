// Package awsasync provides the typed async methods, one per S3 operation.
//
// Each method offloads the corresponding synchronous SDK call onto its
// own goroutine and returns the in-flight task. The signatures mirror
// the SDK's, so switching a call site between sync and async is a
// mechanical change.
package awsasync

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rafidka/awsasync/task"
)

// AbortMultipartUploadAsync runs AbortMultipartUpload on its own goroutine.
func (c *Client) AbortMultipartUploadAsync(
	ctx context.Context,
	params *s3.AbortMultipartUploadInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.AbortMultipartUploadOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.AbortMultipartUploadOutput, error) {
		return c.api.AbortMultipartUpload(ctx, params, optFns...)
	})
}

// CompleteMultipartUploadAsync runs CompleteMultipartUpload on its own goroutine.
func (c *Client) CompleteMultipartUploadAsync(
	ctx context.Context,
	params *s3.CompleteMultipartUploadInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.CompleteMultipartUploadOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.CompleteMultipartUploadOutput, error) {
		return c.api.CompleteMultipartUpload(ctx, params, optFns...)
	})
}

// CopyObjectAsync runs CopyObject on its own goroutine.
func (c *Client) CopyObjectAsync(
	ctx context.Context,
	params *s3.CopyObjectInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.CopyObjectOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.CopyObjectOutput, error) {
		return c.api.CopyObject(ctx, params, optFns...)
	})
}

// CreateBucketAsync runs CreateBucket on its own goroutine.
func (c *Client) CreateBucketAsync(
	ctx context.Context,
	params *s3.CreateBucketInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.CreateBucketOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.CreateBucketOutput, error) {
		return c.api.CreateBucket(ctx, params, optFns...)
	})
}

// CreateMultipartUploadAsync runs CreateMultipartUpload on its own goroutine.
func (c *Client) CreateMultipartUploadAsync(
	ctx context.Context,
	params *s3.CreateMultipartUploadInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.CreateMultipartUploadOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.CreateMultipartUploadOutput, error) {
		return c.api.CreateMultipartUpload(ctx, params, optFns...)
	})
}

// DeleteBucketAsync runs DeleteBucket on its own goroutine.
func (c *Client) DeleteBucketAsync(
	ctx context.Context,
	params *s3.DeleteBucketInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.DeleteBucketOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.DeleteBucketOutput, error) {
		return c.api.DeleteBucket(ctx, params, optFns...)
	})
}

// DeleteObjectAsync runs DeleteObject on its own goroutine.
func (c *Client) DeleteObjectAsync(
	ctx context.Context,
	params *s3.DeleteObjectInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.DeleteObjectOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.DeleteObjectOutput, error) {
		return c.api.DeleteObject(ctx, params, optFns...)
	})
}

// DeleteObjectsAsync runs DeleteObjects on its own goroutine.
func (c *Client) DeleteObjectsAsync(
	ctx context.Context,
	params *s3.DeleteObjectsInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.DeleteObjectsOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.DeleteObjectsOutput, error) {
		return c.api.DeleteObjects(ctx, params, optFns...)
	})
}

// GetObjectAsync runs GetObject on its own goroutine.
func (c *Client) GetObjectAsync(
	ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.GetObjectOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.GetObjectOutput, error) {
		return c.api.GetObject(ctx, params, optFns...)
	})
}

// HeadBucketAsync runs HeadBucket on its own goroutine.
func (c *Client) HeadBucketAsync(
	ctx context.Context,
	params *s3.HeadBucketInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.HeadBucketOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.HeadBucketOutput, error) {
		return c.api.HeadBucket(ctx, params, optFns...)
	})
}

// HeadObjectAsync runs HeadObject on its own goroutine.
func (c *Client) HeadObjectAsync(
	ctx context.Context,
	params *s3.HeadObjectInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.HeadObjectOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.HeadObjectOutput, error) {
		return c.api.HeadObject(ctx, params, optFns...)
	})
}

// ListBucketsAsync runs ListBuckets on its own goroutine.
func (c *Client) ListBucketsAsync(
	ctx context.Context,
	params *s3.ListBucketsInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.ListBucketsOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.ListBucketsOutput, error) {
		return c.api.ListBuckets(ctx, params, optFns...)
	})
}

// ListObjectsV2Async runs ListObjectsV2 on its own goroutine.
func (c *Client) ListObjectsV2Async(
	ctx context.Context,
	params *s3.ListObjectsV2Input,
	optFns ...func(*s3.Options),
) *task.Task[*s3.ListObjectsV2Output] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.ListObjectsV2Output, error) {
		return c.api.ListObjectsV2(ctx, params, optFns...)
	})
}

// PutObjectAsync runs PutObject on its own goroutine.
func (c *Client) PutObjectAsync(
	ctx context.Context,
	params *s3.PutObjectInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.PutObjectOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.PutObjectOutput, error) {
		return c.api.PutObject(ctx, params, optFns...)
	})
}

// UploadPartAsync runs UploadPart on its own goroutine.
func (c *Client) UploadPartAsync(
	ctx context.Context,
	params *s3.UploadPartInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.UploadPartOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.UploadPartOutput, error) {
		return c.api.UploadPart(ctx, params, optFns...)
	})
}

// UploadPartCopyAsync runs UploadPartCopy on its own goroutine.
func (c *Client) UploadPartCopyAsync(
	ctx context.Context,
	params *s3.UploadPartCopyInput,
	optFns ...func(*s3.Options),
) *task.Task[*s3.UploadPartCopyOutput] {
	return task.Offload(ctx, func(ctx context.Context) (*s3.UploadPartCopyOutput, error) {
		return c.api.UploadPartCopy(ctx, params, optFns...)
	})
}
