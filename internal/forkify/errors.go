package forkify

import (
	"fmt"
	"time"
)

// networkErrorMessage is the fixed user-facing text for connectivity
// failures, distinct from server-reported errors.
const networkErrorMessage = "Network error. Check your internet connection and try again."

// apiErrorFallback is used when an error response carries no message field.
const apiErrorFallback = "Request failed"

// TimeoutError reports that a request exceeded the configured bound.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Request took too long! Timeout after %d seconds", int(e.Limit.Seconds()))
}

// NetworkError reports a network-level failure (DNS, connection refused,
// offline). The user-facing message is fixed; the underlying cause is
// available through Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return networkErrorMessage
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-2xx response from the catalog. Message is the
// server-supplied message when present, else a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = apiErrorFallback
	}
	return fmt.Sprintf("%s (%d)", msg, e.Status)
}
