package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"
)

// ErrorCode identifies one failure class in the closed error taxonomy.
// Every error that crosses the domain-operation boundary carries exactly
// one of these (or a passthrough custom code from the remote API).
type ErrorCode string

const (
	CodeTimeout                ErrorCode = "timeout"
	CodeConnectionFailed       ErrorCode = "connection_failed"
	CodeMissingParameter       ErrorCode = "missing_parameter"
	CodeInvalidParameters      ErrorCode = "invalid_parameters"
	CodeInvalidParameterType   ErrorCode = "invalid_parameter_type"
	CodeInvalidParameterFormat ErrorCode = "invalid_parameter_format"
	CodeParameterTooShort      ErrorCode = "parameter_too_short"
	CodeParameterTooLong       ErrorCode = "parameter_too_long"
	CodeParameterTooSmall      ErrorCode = "parameter_too_small"
	CodeParameterTooLarge      ErrorCode = "parameter_too_large"
	CodeArrayTooShort          ErrorCode = "array_too_short"
	CodeArrayTooLong           ErrorCode = "array_too_long"
	CodeArrayItemInvalid       ErrorCode = "array_item_invalid"
	CodeAuthFailed             ErrorCode = "auth_failed"
	CodeRateLimited            ErrorCode = "rate_limited"
	CodeUnknown                ErrorCode = "unknown_error"
)

// APIError is the typed error surfaced for every WordPress request or
// validation failure. It is constructed once at the point of failure and
// never mutated afterwards.
type APIError struct {
	Message string
	Status  int
	Code    ErrorCode
	Details map[string]interface{}
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// AuthError is the authentication subtype of APIError. It additionally
// names the auth method that failed so tool output can hint at the
// credentials to check without echoing them.
type AuthError struct {
	APIError
	Method AuthMethod
}

// Unwrap lets errors.As recognize an AuthError as an APIError, which keeps
// classification idempotent for auth failures.
func (e *AuthError) Unwrap() error {
	return &e.APIError
}

// NewAuthError builds an auth_failed error for the given method.
func NewAuthError(method AuthMethod, format string, args ...interface{}) *AuthError {
	return &AuthError{
		APIError: APIError{
			Message: fmt.Sprintf(format, args...),
			Status:  http.StatusUnauthorized,
			Code:    CodeAuthFailed,
		},
		Method: method,
	}
}

// RateLimited builds a rate_limited error, naming the retry-after interval
// when the remote API supplied one.
func RateLimited(retryAfter time.Duration) *APIError {
	msg := "rate limited by the WordPress API"
	details := map[string]interface{}{}
	if retryAfter > 0 {
		msg = fmt.Sprintf("rate limited by the WordPress API, retry after %s", retryAfter)
		details["retryAfter"] = retryAfter.String()
	}
	return &APIError{
		Message: msg,
		Status:  http.StatusTooManyRequests,
		Code:    CodeRateLimited,
		Details: details,
	}
}

// Coder is implemented by errors carrying their own failure code, which
// classification preserves as a passthrough custom code.
type Coder interface {
	ErrorCode() string
}

// Classify collapses any failure into the closed taxonomy. The matching
// order is deliberate: an already-typed error passes through unchanged,
// specific actionable classes (timeout, connectivity) take precedence over
// custom-code passthrough, and the catch-all comes last. Every branch logs
// the failure with the operation name before returning.
func Classify(err error, operation, baseURL string, timeout time.Duration) error {
	// Already classified: return unchanged, even if the underlying cause
	// would also match a later branch.
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		logging.Error("WordPress", err, "%s failed", operation)
		return err
	}

	if isTimeout(err) {
		logging.Error("WordPress", err, "%s timed out", operation)
		return &APIError{
			Message: fmt.Sprintf("%s timed out after %s", operation, timeout),
			Status:  http.StatusRequestTimeout,
			Code:    CodeTimeout,
		}
	}

	if isConnectionFailure(err) {
		logging.Error("WordPress", err, "%s could not reach %s", operation, baseURL)
		return &APIError{
			Message: fmt.Sprintf("could not connect to %s", baseURL),
			Status:  http.StatusServiceUnavailable,
			Code:    CodeConnectionFailed,
		}
	}

	var coder Coder
	if errors.As(err, &coder) && coder.ErrorCode() != "" {
		logging.Error("WordPress", err, "%s failed with code %s", operation, coder.ErrorCode())
		return &APIError{
			Message: fmt.Sprintf("%s failed: %s", operation, err.Error()),
			Status:  http.StatusInternalServerError,
			Code:    ErrorCode(coder.ErrorCode()),
		}
	}

	logging.Error("WordPress", err, "%s failed with an unclassified error", operation)
	return &APIError{
		Message: fmt.Sprintf("%s failed: %s", operation, err.Error()),
		Status:  http.StatusInternalServerError,
		Code:    CodeUnknown,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
