package errors

import "net/http"

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status code the backend would answer with
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument, CodeOutOfRange:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAborted:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fromHTTPStatus maps a response status to a code.
// Any 2xx status is CodeOK.
func fromHTTPStatus(status int) Code {
	switch {
	case status >= 200 && status < 300:
		return CodeOK
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return CodeInvalidArgument
	case status == http.StatusUnauthorized:
		return CodeUnauthenticated
	case status == http.StatusForbidden:
		return CodePermissionDenied
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusConflict:
		return CodeAlreadyExists
	case status == http.StatusRequestTimeout:
		return CodeCanceled
	case status == http.StatusPreconditionFailed:
		return CodeFailedPrecondition
	case status == http.StatusTooManyRequests:
		return CodeResourceExhausted
	case status == http.StatusNotImplemented:
		return CodeUnimplemented
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return CodeUnavailable
	case status == http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		return CodeInternal
	}
}
