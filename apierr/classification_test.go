package apierr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestFromStatusKinds verifies the status code to kind mapping
func TestFromStatusKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected Kind
	}{
		{name: "429 is rate limited", status: 429, expected: KindRateLimited},
		{name: "400 is bad request", status: 400, expected: KindBadRequest},
		{name: "503 is unavailable", status: 503, expected: KindUnavailable},
		{name: "500 is unknown http", status: 500, expected: KindUnknownHTTP},
		{name: "404 is unknown http", status: 404, expected: KindUnknownHTTP},
		{name: "502 is unknown http", status: 502, expected: KindUnknownHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromStatus(tt.status, nil)
			if e.Kind != tt.expected {
				t.Errorf("FromStatus(%d).Kind = %q, want %q", tt.status, e.Kind, tt.expected)
			}
			if e.Status != tt.status {
				t.Errorf("FromStatus(%d).Status = %d, want %d", tt.status, e.Status, tt.status)
			}
		})
	}
}

// TestRetryAfterExtraction verifies retry_after_seconds parsing with fallbacks
func TestRetryAfterExtraction(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "explicit value", body: `{"retry_after_seconds": 15}`, expected: 15},
		{name: "large value", body: `{"retry_after_seconds": 120}`, expected: 120},
		{name: "absent field", body: `{"error": "too many requests"}`, expected: DefaultRetryAfter},
		{name: "empty body", body: "", expected: DefaultRetryAfter},
		{name: "unparsable body", body: "not json at all", expected: DefaultRetryAfter},
		{name: "zero value falls back", body: `{"retry_after_seconds": 0}`, expected: DefaultRetryAfter},
		{name: "negative value falls back", body: `{"retry_after_seconds": -5}`, expected: DefaultRetryAfter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := FromStatus(429, []byte(tt.body))
			if e.RetryAfter != tt.expected {
				t.Errorf("RetryAfter = %d, want %d", e.RetryAfter, tt.expected)
			}
			wait := fmt.Sprintf("Wait %d seconds", tt.expected)
			if !strings.Contains(e.Guidance(), wait) {
				t.Errorf("Guidance() = %q, want it to contain %q", e.Guidance(), wait)
			}
		})
	}
}

// TestFromTransport verifies refused connections are told apart from other
// transport failures
func TestFromTransport(t *testing.T) {
	refused := errors.New("Get \"http://127.0.0.1:9/game-state\": dial tcp 127.0.0.1:9: connect: connection refused")
	e := FromTransport(refused)
	if e.Kind != KindUnreachable {
		t.Errorf("Kind = %q, want %q", e.Kind, KindUnreachable)
	}
	if !strings.Contains(e.Guidance(), DefaultEndpoint) {
		t.Errorf("Guidance() = %q, want it to name %q", e.Guidance(), DefaultEndpoint)
	}

	reset := errors.New("read tcp: connection reset by peer")
	e = FromTransport(reset)
	if e.Kind != KindUnknownTransport {
		t.Errorf("Kind = %q, want %q", e.Kind, KindUnknownTransport)
	}
	if !strings.Contains(e.Guidance(), reset.Error()) {
		t.Errorf("Guidance() = %q, want it to echo %q", e.Guidance(), reset.Error())
	}
}

// TestClassify verifies coercion of arbitrary errors
func TestClassify(t *testing.T) {
	classified := FromStatus(503, nil)
	if got := Classify(classified); got != classified {
		t.Error("Classify should pass through an already classified error")
	}

	e := Classify(errors.New("unexpected end of JSON input"))
	if e.Kind != KindUnknown {
		t.Errorf("Kind = %q, want %q", e.Kind, KindUnknown)
	}
	if e.Guidance() != "⚠️ Something went wrong. Please try again." {
		t.Errorf("unexpected generic guidance: %q", e.Guidance())
	}
}

// TestGuidanceByKind verifies each kind renders its own branch
func TestGuidanceByKind(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains string
	}{
		{
			name:     "bad request echoes body",
			err:      FromStatus(400, []byte("message too long")),
			contains: "message too long",
		},
		{
			name:     "bad request fallback hint",
			err:      FromStatus(400, nil),
			contains: "the server rejected the request",
		},
		{
			name:     "bad request reminds about bounds",
			err:      FromStatus(400, nil),
			contains: "40 hex characters",
		},
		{
			name:     "unavailable is fixed",
			err:      FromStatus(503, []byte("ignored")),
			contains: "down for maintenance",
		},
		{
			name:     "unknown http echoes status and body",
			err:      FromStatus(500, []byte("boom")),
			contains: "(HTTP 500): boom",
		},
		{
			name:     "unknown http without body",
			err:      FromStatus(500, nil),
			contains: "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Guidance(); !strings.Contains(got, tt.contains) {
				t.Errorf("Guidance() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}
