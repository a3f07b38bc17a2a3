package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no upstream is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrInvalidCredentials is returned by AuthProvider for a rejected email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when the upstream has no such resource.
	ErrNotFound = errors.New("not found")
)

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// DecodeError reports a payload that could not be decoded into the expected envelope.
type DecodeError struct {
	Provider string
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode %s: %v", e.Provider, e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// Retryable reports whether a failed call is worth repeating.
// Credential rejections, missing resources, decode failures and client errors are final.
func Retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrNotFound), errors.Is(err, ErrProviderUnavailable):
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return false
	}
	if stErr, ok := AsStatusError(err); ok {
		return stErr.StatusCode >= 500
	}
	return true
}
