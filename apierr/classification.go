package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultEndpoint is the public Brain API base URL, named in the guidance
// for unreachable failures regardless of the configured base URL.
const DefaultEndpoint = "https://lucille.world/api/brain"

// retryHint is the subset of a 429 body the classifier cares about.
type retryHint struct {
	RetryAfterSeconds *int `json:"retry_after_seconds"`
}

// FromStatus classifies a non-2xx HTTP response.
//
// The mapping is uniform across all endpoints:
//   - 429 -> KindRateLimited, with retry_after_seconds parsed from the body
//     (DefaultRetryAfter when absent or unparsable)
//   - 400 -> KindBadRequest
//   - 503 -> KindUnavailable
//   - anything else -> KindUnknownHTTP
func FromStatus(status int, body []byte) *Error {
	e := &Error{
		Status: status,
		Body:   string(body),
	}

	switch status {
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = DefaultRetryAfter
		var hint retryHint
		if err := json.Unmarshal(body, &hint); err == nil && hint.RetryAfterSeconds != nil && *hint.RetryAfterSeconds > 0 {
			e.RetryAfter = *hint.RetryAfterSeconds
		}
	case http.StatusBadRequest:
		e.Kind = KindBadRequest
	case http.StatusServiceUnavailable:
		e.Kind = KindUnavailable
	default:
		e.Kind = KindUnknownHTTP
	}

	return e
}

// FromTransport classifies a transport-level failure, typically the error
// returned by http.Client.Do. A message indicating a refused connection maps
// to KindUnreachable; everything else maps to KindUnknownTransport.
func FromTransport(err error) *Error {
	kind := KindUnknownTransport
	if strings.Contains(err.Error(), "connection refused") {
		kind = KindUnreachable
	}
	return &Error{
		Kind:  kind,
		Cause: err,
	}
}

// Classify coerces any error into a classified *Error.
// Errors produced by FromStatus or FromTransport pass through unchanged;
// anything else becomes KindUnknown.
func Classify(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Kind:  KindUnknown,
		Cause: err,
	}
}

// Guidance renders the agent-facing text for this error.
// Every Kind terminates in a formatted result; the underlying failure is
// never re-raised past the gateway boundary.
func (e *Error) Guidance() string {
	switch e.Kind {
	case KindRateLimited:
		return fmt.Sprintf(
			"⏳ Rate limited. Wait %d seconds before trying again.\n"+
				"Limits: 3 plays per minute, 60 reads per minute.",
			e.RetryAfter)

	case KindBadRequest:
		hint := e.Body
		if hint == "" {
			hint = "the server rejected the request"
		}
		return fmt.Sprintf(
			"❌ Bad request: %s\n"+
				"Check that your wallet address is 0x followed by 40 hex characters "+
				"and your message is between 1 and 500 characters.",
			hint)

	case KindUnavailable:
		return "🔧 Lucille is down for maintenance. Try again in a few minutes."

	case KindUnreachable:
		return fmt.Sprintf(
			"🔌 Cannot reach the Lucille API at %s. The service may be offline.",
			DefaultEndpoint)

	case KindUnknownHTTP:
		body := e.Body
		if body == "" {
			body = "Unknown error"
		}
		return fmt.Sprintf("⚠️ Unexpected response (HTTP %d): %s", e.Status, body)

	case KindUnknownTransport:
		return fmt.Sprintf("⚠️ Request failed: %s", e.Cause)

	default:
		return "⚠️ Something went wrong. Please try again."
	}
}
