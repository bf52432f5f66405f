package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// FromResponse builds an error for a non-2xx backend response.
// serverMsg is the "error" field of the body when the backend supplied one.
func FromResponse(status int, serverMsg string) *Error {
	msg := serverMsg
	if msg == "" {
		msg = http.StatusText(status)
	}
	return New(fromHTTPStatus(status), msg).WithMeta("http_status", status)
}

// FromServer wraps a logical failure reported as {"success": false}
func FromServer(serverMsg string) *Error {
	if serverMsg == "" {
		serverMsg = "request was not successful"
	}
	return FailedPrecondition(serverMsg)
}

// FromTransport classifies an error returned by the HTTP round trip
func FromTransport(err error, op string) *Error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, fmt.Sprintf("%s timed out", op))
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, fmt.Sprintf("%s canceled", op))
	default:
		return WrapWithCode(err, CodeUnavailable, fmt.Sprintf("%s failed", op))
	}
}
