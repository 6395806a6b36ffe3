package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestError_Error tests message formatting with and without method
// context.
func TestError_Error(t *testing.T) {
	err := NewError("asyncify", ErrUnknownOperation)
	assert.Equal(t, "awsasync.asyncify: awsasync: unknown operation", err.Error())

	err = NewMethodError("call", "list_buckets", ErrUnknownMethod)
	assert.Equal(t, "awsasync.call list_buckets: awsasync: unknown method", err.Error())

	err = NewError("call", ErrInvalidParams).WithMethod("put_object")
	assert.Contains(t, err.Error(), "put_object")
}

// TestError_Unwrap tests sentinel matching through the wrapper.
func TestError_Unwrap(t *testing.T) {
	err := NewMethodError("asyncify", "get_object", ErrUnknownOperation)

	assert.True(t, stderrors.Is(err, ErrUnknownOperation))
	assert.True(t, IsUnknownOperation(err))
	assert.False(t, IsUnknownMethod(err))
	assert.False(t, IsInvalidParams(err))

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, "get_object", e.Method)
}
