package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToSnake tests the PascalCase/camelCase to snake_case conversion.
func TestToSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pascal case",
			input: "TestVariable",
			want:  "test_variable",
		},
		{
			name:  "camel case",
			input: "testVariable",
			want:  "test_variable",
		},
		{
			name:  "digits attach to preceding token",
			input: "Test123Variable",
			want:  "test123_variable",
		},
		{
			name:  "acronym run stays together",
			input: "testHTTPMethod",
			want:  "test_http_method",
		},
		{
			name:  "single word",
			input: "Test",
			want:  "test",
		},
		{
			name:  "already lowercase",
			input: "test",
			want:  "test",
		},
		{
			name:  "s3 operation",
			input: "ListBuckets",
			want:  "list_buckets",
		},
		{
			name:  "operation with version digit",
			input: "ListObjectsV2",
			want:  "list_objects_v2",
		},
		{
			name:  "multipart operation",
			input: "CreateMultipartUpload",
			want:  "create_multipart_upload",
		},
		{
			name:  "trailing acronym",
			input: "GetObjectACL",
			want:  "get_object_acl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnake(tt.input))
		})
	}
}

// TestToSnake_CoversDeclaredOperations verifies the conversion against
// the method names the AWS SDKs actually use for a few well-known
// operations.
func TestToSnake_CoversDeclaredOperations(t *testing.T) {
	want := map[string]string{
		"PutObject":               "put_object",
		"DeleteObjects":           "delete_objects",
		"HeadBucket":              "head_bucket",
		"UploadPartCopy":          "upload_part_copy",
		"CompleteMultipartUpload": "complete_multipart_upload",
		"AbortMultipartUpload":    "abort_multipart_upload",
	}

	for op, name := range want {
		assert.Equal(t, name, ToSnake(op), "operation %s", op)
	}
}
