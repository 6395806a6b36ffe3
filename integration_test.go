//go:build integration
// +build integration

package awsasync_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidka/awsasync"
	"github.com/rafidka/awsasync/internal/testutil"
)

// TestIntegration_AsyncRoundTrip exercises the async bindings against
// LocalStack: create a bucket, upload concurrently, download, delete.
func TestIntegration_AsyncRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, cleanup := testutil.SetupLocalStack(t)
	defer cleanup()

	cfg, err := container.AWSConfig(ctx)
	require.NoError(t, err)

	client, err := awsasync.New(
		awsasync.WithAWSConfig(&cfg),
		awsasync.WithEndpoint(container.Endpoint()),
		awsasync.WithForcePathStyle(true),
	)
	require.NoError(t, err)

	bucket := testutil.GenerateBucketName("awsasync")
	_, err = client.CreateBucketAsync(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}).Wait()
	require.NoError(t, err, "failed to create test bucket")
	defer func() {
		_ = testutil.CleanupBucket(ctx, client.Raw(), bucket)
	}()

	t.Run("concurrent uploads", func(t *testing.T) {
		const n = 8

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("objects/%d.txt", i)
				body := []byte(fmt.Sprintf("payload-%d", i))

				_, err := client.PutObjectAsync(ctx, &s3.PutObjectInput{
					Bucket: aws.String(bucket),
					Key:    aws.String(key),
					Body:   bytes.NewReader(body),
				}).Wait()
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		out, err := client.ListObjectsV2Async(ctx, &s3.ListObjectsV2Input{
			Bucket: aws.String(bucket),
			Prefix: aws.String("objects/"),
		}).Wait()
		require.NoError(t, err)
		assert.Len(t, out.Contents, n)
	})

	t.Run("download via dynamic dispatch", func(t *testing.T) {
		tk, err := client.CallAsync(ctx, "get_object", &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String("objects/0.txt"),
		})
		require.NoError(t, err)

		res, err := tk.Wait()
		require.NoError(t, err)

		out := res.(*s3.GetObjectOutput)
		defer out.Body.Close()
		data, err := io.ReadAll(out.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload-0"), data)
	})

	t.Run("error propagation", func(t *testing.T) {
		_, err := client.GetObjectAsync(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String("does-not-exist"),
		}).Wait()
		require.Error(t, err)

		// The SDK error comes through untouched.
		var apiErr interface{ ErrorCode() string }
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "NoSuchKey", apiErr.ErrorCode())
	})

	t.Run("delete", func(t *testing.T) {
		_, err := client.DeleteObjectAsync(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String("objects/0.txt"),
		}).Wait()
		assert.NoError(t, err)
	})
}
