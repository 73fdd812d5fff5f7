package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string     { return "coded failure" }
func (e *codedError) ErrorCode() string { return e.code }

func classify(err error) error {
	return Classify(err, "GET posts on site test", "https://example.com", 30*time.Second)
}

func TestClassifyAlreadyTypedPassesThroughUnchanged(t *testing.T) {
	// An error that is already typed must be returned as-is even when its
	// cause would also match the timeout branch: classification order is
	// first match wins, and the typed check comes first.
	typed := &APIError{
		Message: fmt.Sprintf("wrapped cause: %s", context.DeadlineExceeded),
		Status:  http.StatusBadGateway,
		Code:    ErrorCode("custom_upstream"),
	}

	got := classify(typed)
	assert.Same(t, typed, got)

	// The AuthError subtype keeps its identity too.
	authErr := NewAuthError(AuthJWT, "token exchange failed")
	assert.Same(t, authErr, classify(authErr).(*AuthError))
}

func TestClassifyTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"deadline exceeded", context.DeadlineExceeded},
		{"wrapped deadline", fmt.Errorf("request aborted: %w", context.DeadlineExceeded)},
		{"cancellation", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			var apiErr *APIError
			require.ErrorAs(t, got, &apiErr)
			assert.Equal(t, CodeTimeout, apiErr.Code)
			assert.Equal(t, http.StatusRequestTimeout, apiErr.Status)
			assert.Contains(t, apiErr.Message, "30s")
		})
	}
}

func TestClassifyConnectionFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"connection refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "example.invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			var apiErr *APIError
			require.ErrorAs(t, got, &apiErr)
			assert.Equal(t, CodeConnectionFailed, apiErr.Code)
			assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
			assert.Contains(t, apiErr.Message, "https://example.com")
		})
	}
}

func TestClassifyCustomCodePassthrough(t *testing.T) {
	got := classify(&codedError{code: "rest_no_route"})

	var apiErr *APIError
	require.ErrorAs(t, got, &apiErr)
	assert.Equal(t, ErrorCode("rest_no_route"), apiErr.Code)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "GET posts on site test")
}

func TestClassifyUnknownFallback(t *testing.T) {
	got := classify(errors.New("something odd happened"))

	var apiErr *APIError
	require.ErrorAs(t, got, &apiErr)
	assert.Equal(t, CodeUnknown, apiErr.Code)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "something odd happened")
}

func TestRateLimited(t *testing.T) {
	err := RateLimited(90 * time.Second)
	assert.Equal(t, CodeRateLimited, err.Code)
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Contains(t, err.Message, "1m30s")
	assert.Equal(t, "1m30s", err.Details["retryAfter"])

	noInterval := RateLimited(0)
	assert.Equal(t, CodeRateLimited, noInterval.Code)
	assert.NotContains(t, noInterval.Message, "retry after")
}

func TestAuthErrorIsAnAPIError(t *testing.T) {
	err := NewAuthError(AuthBasic, "basic authentication requires a password")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeAuthFailed, apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}
