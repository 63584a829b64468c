package apierr

import (
	"errors"
	"testing"
)

// TestErrorFormat verifies the Error() string layout
func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "http error with body",
			err:      &Error{Kind: KindBadRequest, Status: 400, Body: "bad address"},
			expected: "brain api [bad_request/400]: bad address",
		},
		{
			name:     "transport error with cause",
			err:      &Error{Kind: KindUnreachable, Cause: errors.New("connection refused")},
			expected: "brain api [unreachable]: connection refused",
		},
		{
			name:     "bare kind",
			err:      &Error{Kind: KindUnknown},
			expected: "brain api [unknown]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestUnwrap verifies errors.Is sees through the cause chain
func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	e := FromTransport(cause)

	if !errors.Is(e, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

// TestIsMatchesOnKind verifies kind-based equality
func TestIsMatchesOnKind(t *testing.T) {
	a := FromStatus(429, []byte(`{"retry_after_seconds": 5}`))
	b := &Error{Kind: KindRateLimited}

	if !errors.Is(a, b) {
		t.Error("errors with the same kind should match")
	}

	c := &Error{Kind: KindUnavailable}
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

// TestAsExtractsError verifies errors.As extraction through wrapping
func TestAsExtractsError(t *testing.T) {
	var target *Error
	wrapped := FromStatus(503, nil)

	if !errors.As(error(wrapped), &target) {
		t.Fatal("errors.As should extract *Error")
	}
	if target.Kind != KindUnavailable {
		t.Errorf("Kind = %q, want %q", target.Kind, KindUnavailable)
	}
}
