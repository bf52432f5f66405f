package errors

import (
	"errors"
	"fmt"
)

// Error is a coded error carrying a user facing message and optional metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta attaches a metadata entry and returns the same error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, keeping its code when it is already an *Error.
// Plain errors become CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Cause:   err,
			Meta:    existing.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and forces the given code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	var meta map[string]interface{}
	if errors.As(err, &existing) && len(existing.Meta) > 0 {
		meta = make(map[string]interface{}, len(existing.Meta))
		for k, v := range existing.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// ResourceExhaustedf creates a resource exhausted error with formatted message
func ResourceExhaustedf(format string, args ...interface{}) *Error {
	return newf(CodeResourceExhausted, format, args...)
}

// FailedPrecondition creates a failed precondition error
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return newf(CodeFailedPrecondition, format, args...)
}

// Aborted creates an aborted error
func Aborted(message string) *Error {
	return New(CodeAborted, message)
}

// OutOfRangef creates an out of range error with formatted message
func OutOfRangef(format string, args ...interface{}) *Error {
	return newf(CodeOutOfRange, format, args...)
}
