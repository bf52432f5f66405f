package errors

import (
	"errors"
)

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage returns the message suitable for a user notification
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsResourceExhausted checks if an error is a resource exhausted error
func IsResourceExhausted(err error) bool {
	return GetCode(err) == CodeResourceExhausted
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsAborted checks if an error is an aborted error
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}
