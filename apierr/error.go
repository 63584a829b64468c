package apierr

import (
	"fmt"
	"strings"
)

// Kind categorizes a failed upstream call by its nature. The set is closed:
// every failure the gateway can observe maps to exactly one of these values.
type Kind string

const (
	// KindRateLimited indicates the upstream returned HTTP 429.
	KindRateLimited Kind = "rate_limited"

	// KindBadRequest indicates the upstream rejected the request with HTTP 400.
	KindBadRequest Kind = "bad_request"

	// KindUnavailable indicates the upstream is down for maintenance (HTTP 503).
	KindUnavailable Kind = "unavailable"

	// KindUnreachable indicates the transport could not connect at all.
	KindUnreachable Kind = "unreachable"

	// KindUnknownHTTP indicates any other non-2xx HTTP status.
	KindUnknownHTTP Kind = "unknown_http"

	// KindUnknownTransport indicates a transport failure other than a refused
	// connection, such as a DNS failure or a reset mid-response.
	KindUnknownTransport Kind = "unknown_transport"

	// KindUnknown indicates a failure that is neither an HTTP status nor a
	// transport error, such as an unreadable response body.
	KindUnknown Kind = "unknown"
)

// DefaultRetryAfter is the wait hint, in seconds, used when a rate-limited
// response carries no parsable retry_after_seconds field.
const DefaultRetryAfter = 60

// Error is a structured error for a failed Brain API call.
// It records how the call failed, preserves the raw diagnostic body for
// operators, and renders agent-facing guidance via Guidance.
type Error struct {
	// Kind is the classification of the failure.
	Kind Kind

	// Status is the HTTP status code, or 0 for transport-level failures.
	Status int

	// RetryAfter is the wait hint in seconds. Only meaningful for
	// KindRateLimited; always at least 1 there.
	RetryAfter int

	// Body is the raw response body, if any was received.
	Body string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
// It formats the error as: "brain api [kind/status]: body: cause".
func (e *Error) Error() string {
	var parts []string

	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("brain api [%s/%d]", e.Kind, e.Status))
	} else {
		parts = append(parts, fmt.Sprintf("brain api [%s]", e.Kind))
	}

	if e.Body != "" {
		parts = append(parts, e.Body)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause error.
// This enables errors.Is() and errors.As() to work with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
// Two Error values are considered equal if they have the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
