package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"
	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"github.com/google/uuid"
)

// restNamespace is the canonical WordPress REST namespace all resource
// paths are resolved under. Paths with a leading slash bypass it and
// resolve from the site root (the token endpoint, the ping endpoint).
const restNamespace = "/wp-json/wp/v2/"

const (
	maxAttempts = 3
	userAgent   = "mcp-wordpress/1.0"
)

// retryBaseDelay seeds the exponential backoff. Variable so tests can
// shrink it.
var retryBaseDelay = 500 * time.Millisecond

// Client is the per-site request engine. It owns the site's AuthManager
// and is exclusive to that site: lifetime equals the process lifetime,
// no cross-site sharing of credentials or state.
type Client struct {
	site config.Site
	auth *AuthManager
	http *http.Client
}

// NewClient builds the client for one configured site.
func NewClient(site config.Site) (*Client, error) {
	method, err := ParseAuthMethod(site.Settings.Method())
	if err != nil {
		return nil, fmt.Errorf("site %q: %w", site.ID, err)
	}

	// No transport-level timeout: each request is bounded by its own
	// context so uploads can run longer than regular calls.
	httpClient := &http.Client{}

	auth := NewAuthManager(site.ID, site.Settings.BaseURL(), AuthConfig{
		Method:      method,
		Username:    site.Settings.Username,
		AppPassword: site.Settings.AppPassword,
		Password:    site.Settings.Password,
		APIKey:      site.Settings.APIKey,
	}, httpClient)

	return &Client{
		site: site,
		auth: auth,
		http: httpClient,
	}, nil
}

// ID returns the site id this client serves.
func (c *Client) ID() string { return c.site.ID }

// Name returns the site's display name.
func (c *Client) Name() string { return c.site.Name }

// BaseURL returns the site's base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.site.Settings.BaseURL() }

// Auth returns the site's auth manager.
func (c *Client) Auth() *AuthManager { return c.auth }

// request describes one HTTP call. Built fresh per invocation and never
// reused across calls.
type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte    // JSON payload, replayable across retries
	stream      io.Reader // one-shot body (multipart upload), disables retry
	contentType string
	timeout     time.Duration
	retryable   bool
}

// Get issues a GET against the REST namespace and decodes the JSON
// response into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query map[string]interface{}, out interface{}) error {
	return c.do(ctx, request{
		method:    http.MethodGet,
		path:      path,
		query:     buildQuery(query),
		retryable: true,
	}, out)
}

// Post issues a POST with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:    http.MethodPost,
		path:      path,
		body:      body,
		retryable: true,
	}, out)
}

// Put issues a PUT with a JSON payload.
func (c *Client) Put(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		method:    http.MethodPut,
		path:      path,
		body:      body,
		retryable: true,
	}, out)
}

// Delete issues a DELETE with optional query parameters.
func (c *Client) Delete(ctx context.Context, path string, query map[string]interface{}, out interface{}) error {
	return c.do(ctx, request{
		method:    http.MethodDelete,
		path:      path,
		query:     buildQuery(query),
		retryable: true,
	}, out)
}

func marshalPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("could not encode request payload: %s", err),
			Status:  http.StatusBadRequest,
			Code:    CodeInvalidParameters,
		}
	}
	return body, nil
}

// do runs the request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	raw, err := c.doRaw(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return Classify(fmt.Errorf("decoding response body: %w", err),
			c.operation(req), c.BaseURL(), c.timeoutFor(req))
	}
	return nil
}

// doRaw runs the request with the bounded retry policy and returns the
// response body bytes. Transient failures (timeout, connection refused,
// 5xx, rate limiting) are retried with exponential backoff and jitter;
// validation and authentication failures are not.
func (c *Client) doRaw(ctx context.Context, req request) ([]byte, error) {
	operation := c.operation(req)
	requestID := uuid.NewString()[:8]

	attempts := 1
	if req.retryable {
		attempts = maxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := c.attempt(ctx, req, operation)
		if err == nil {
			if attempt > 1 {
				logging.Info("WordPress", "[%s] %s succeeded on attempt %d", requestID, operation, attempt)
			}
			return raw, nil
		}

		lastErr = err
		if attempt == attempts || !isRetryable(err) {
			break
		}

		delay := backoffDelay(attempt)
		logging.Warn("WordPress", "[%s] %s failed (attempt %d/%d), retrying in %s: %v",
			requestID, operation, attempt, attempts, delay, err)

		select {
		case <-ctx.Done():
			return nil, Classify(ctx.Err(), operation, c.BaseURL(), c.timeoutFor(req))
		case <-time.After(delay):
		}
	}

	return nil, lastErr
}

// attempt performs a single HTTP exchange, running the scheme's handshake
// first when one is needed. Failures come back already classified.
func (c *Client) attempt(ctx context.Context, req request, operation string) ([]byte, error) {
	timeout := c.timeoutFor(req)
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.auth.EnsureAuthenticated(attemptCtx); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.method, c.resolveURL(req), c.bodyFor(req))
	if err != nil {
		return nil, Classify(err, operation, c.BaseURL(), timeout)
	}

	// Auth headers first, then defaults. A multipart body carries its own
	// content type with the boundary; everything else defaults to JSON.
	for key, values := range c.auth.Headers() {
		for _, v := range values {
			httpReq.Header.Set(key, v)
		}
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", "application/json")
	switch {
	case req.contentType != "":
		httpReq.Header.Set("Content-Type", req.contentType)
	case req.body != nil:
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, Classify(err, operation, c.BaseURL(), timeout)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Classify(err, operation, c.BaseURL(), timeout)
	}

	if resp.StatusCode >= 400 {
		return nil, c.errorFromResponse(resp, raw, operation)
	}
	return raw, nil
}

func (c *Client) bodyFor(req request) io.Reader {
	if req.stream != nil {
		return req.stream
	}
	if req.body != nil {
		return bytes.NewReader(req.body)
	}
	return nil
}

func (c *Client) timeoutFor(req request) time.Duration {
	if req.timeout > 0 {
		return req.timeout
	}
	return c.site.Settings.Timeout()
}

func (c *Client) resolveURL(req request) string {
	var endpoint string
	if strings.HasPrefix(req.path, "/") {
		endpoint = c.BaseURL() + req.path
	} else {
		endpoint = c.BaseURL() + restNamespace + req.path
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}
	return endpoint
}

func (c *Client) operation(req request) string {
	return fmt.Sprintf("%s %s on site %s", req.method, req.path, c.site.ID)
}

// wpErrorBody is the structured error shape the WordPress REST API
// returns for failed requests.
type wpErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorFromResponse maps a non-2xx response into the typed taxonomy,
// preserving the real HTTP status so callers can distinguish a 404 from
// a 500.
func (c *Client) errorFromResponse(resp *http.Response, raw []byte, operation string) error {
	var wpErr wpErrorBody
	_ = json.Unmarshal(raw, &wpErr)

	message := wpErr.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		authErr := &AuthError{
			APIError: APIError{
				Message: fmt.Sprintf("authentication failed for site %s using %s: %s (check your credentials)",
					c.site.ID, c.auth.Method(), message),
				Status: resp.StatusCode,
				Code:   CodeAuthFailed,
			},
			Method: c.auth.Method(),
		}
		logging.Error("WordPress", authErr, "%s rejected", operation)
		return authErr

	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		rlErr := RateLimited(retryAfter)
		logging.Warn("WordPress", "%s was rate limited", operation)
		return rlErr

	default:
		code := CodeUnknown
		if wpErr.Code != "" {
			code = ErrorCode(wpErr.Code)
		}
		apiErr := &APIError{
			Message: fmt.Sprintf("%s returned HTTP %d: %s", operation, resp.StatusCode, message),
			Status:  resp.StatusCode,
			Code:    code,
		}
		logging.Error("WordPress", apiErr, "%s failed", operation)
		return apiErr
	}
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// isRetryable reports whether a classified error is transient. Auth
// failures and non-429 4xx responses are final.
func isRetryable(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case CodeTimeout, CodeConnectionFailed, CodeRateLimited:
			return true
		}
		return apiErr.Status >= 500
	}
	return false
}

func backoffDelay(attempt int) time.Duration {
	delay := retryBaseDelay << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(delay) / 2))
	return delay + jitter
}

// buildQuery stringifies all query parameters: numbers and booleans are
// normalized to their canonical string form, slices joined with commas.
func buildQuery(params map[string]interface{}) url.Values {
	if len(params) == 0 {
		return nil
	}
	values := url.Values{}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if s := stringifyQueryValue(params[key]); s != "" {
			values.Set(key, s)
		}
	}
	return values
}

func stringifyQueryValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyQueryValue(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
