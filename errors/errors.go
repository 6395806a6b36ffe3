// Package errors provides error types for client augmentation and
// dynamic operation dispatch.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a failure in this module's own machinery, with
// context about the step and operation involved. Failures returned by
// the underlying AWS SDK calls are never wrapped in this type; they
// propagate to the caller unchanged.
type Error struct {
	// Op is the step that failed (e.g., "asyncify", "call", "client initialization")
	Op string

	// Method is the conventional method name involved (if applicable)
	Method string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("awsasync.%s %s: %v", e.Op, e.Method, e.Err)
	}
	return fmt.Sprintf("awsasync.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithMethod adds method-name context to an existing error.
func (e *Error) WithMethod(method string) *Error {
	e.Method = method
	return e
}

// NewError creates a new Error with the given step and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewMethodError creates a new Error with method-name context.
func NewMethodError(op, method string, err error) *Error {
	return &Error{
		Op:     op,
		Method: method,
		Err:    err,
	}
}

// Sentinel errors for augmentation and dispatch failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrUnknownOperation indicates that a declared operation has no
	// registered method under its conventional name. It means the
	// naming convention assumption is violated and augmentation
	// cannot proceed.
	ErrUnknownOperation = errors.New("awsasync: unknown operation")

	// ErrUnknownMethod indicates that a dispatch target name is not
	// registered on the client.
	ErrUnknownMethod = errors.New("awsasync: unknown method")

	// ErrNotAsyncified indicates that async bindings were requested
	// before Asyncify was applied to the client.
	ErrNotAsyncified = errors.New("awsasync: client not asyncified")

	// ErrInvalidParams indicates that the parameters passed to a
	// dynamically dispatched call do not match the operation's input
	// type.
	ErrInvalidParams = errors.New("awsasync: invalid params type")
)

// IsUnknownOperation checks if an error indicates a declared operation
// without a matching method.
func IsUnknownOperation(err error) bool {
	return errors.Is(err, ErrUnknownOperation)
}

// IsUnknownMethod checks if an error indicates an unregistered
// dispatch target.
func IsUnknownMethod(err error) bool {
	return errors.Is(err, ErrUnknownMethod)
}

// IsInvalidParams checks if an error indicates a params type mismatch.
func IsInvalidParams(err error) bool {
	return errors.Is(err, ErrInvalidParams)
}
