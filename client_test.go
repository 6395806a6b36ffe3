// Package awsasync provides tests for client construction and configuration.
package awsasync

import (
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidka/awsasync/internal/testutil"
)

// TestClient_New tests the New() constructor with default configuration.
func TestClient_New(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "default configuration",
			opts:    nil,
			wantErr: false,
		},
		{
			name:    "with region option",
			opts:    []Option{WithRegion("us-west-2")},
			wantErr: false,
		},
		{
			name:    "with multiple options",
			opts:    []Option{WithRegion("us-east-1"), WithMaxRetries(5)},
			wantErr: false,
		},
		{
			name: "with endpoint and path style",
			opts: []Option{
				WithEndpoint("http://localhost:4566"),
				WithForcePathStyle(true),
			},
			wantErr: false,
		},
		{
			name:    "with timeout",
			opts:    []Option{WithTimeout(30 * time.Second)},
			wantErr: false,
		},
		{
			name:    "with custom http client",
			opts:    []Option{WithHTTPClient(&http.Client{Timeout: 5 * time.Second})},
			wantErr: false,
		},
		{
			name:    "with custom aws config",
			opts:    []Option{WithAWSConfig(&aws.Config{Region: "eu-central-1"})},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.api)
			assert.NotNil(t, client.Raw())
		})
	}
}

// TestClient_New_AsyncifiedByDefault tests that New returns a client
// with async bindings already attached.
func TestClient_New_AsyncifiedByDefault(t *testing.T) {
	client, err := New(WithRegion("us-east-1"))
	require.NoError(t, err)

	methods := client.Methods()
	assert.Contains(t, methods, "list_buckets")
	assert.Contains(t, methods, "list_buckets"+AsyncSuffix)
	assert.Contains(t, methods, "put_object")
	assert.Contains(t, methods, "put_object"+AsyncSuffix)
}

// TestClient_New_RegionResolution tests region handling in the
// constructed configuration.
func TestClient_New_RegionResolution(t *testing.T) {
	client, err := New(WithRegion("ap-southeast-2"))
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", client.Config().Region)

	// A custom config without a region falls back to the AWS default.
	client, err = New(WithAWSConfig(&aws.Config{}))
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", client.Config().Region)
}

// TestClient_NewFromAPI tests construction from a custom S3API
// implementation.
func TestClient_NewFromAPI(t *testing.T) {
	client := NewFromAPI(&testutil.MockS3Client{})
	require.NotNil(t, client)

	// Not augmented yet: sync bindings only.
	methods := client.Methods()
	assert.Contains(t, methods, "get_object")
	assert.NotContains(t, methods, "get_object"+AsyncSuffix)

	// No SDK client behind a custom implementation.
	assert.Nil(t, client.Raw())
	assert.NoError(t, client.Close())
}

// TestClient_Operations tests the declared operation list.
func TestClient_Operations(t *testing.T) {
	client := NewFromAPI(&testutil.MockS3Client{})

	ops := client.Operations()
	assert.Len(t, ops, 16)
	assert.Contains(t, ops, "ListBuckets")
	assert.Contains(t, ops, "PutObject")
	assert.Contains(t, ops, "ListObjectsV2")

	// Callers get a copy, not the registry itself.
	ops[0] = "mutated"
	assert.NotContains(t, client.Operations(), "mutated")
}
