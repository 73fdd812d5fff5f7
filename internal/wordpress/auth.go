package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMethod identifies one of the supported authentication schemes.
// The set is closed; dispatch over it is exhaustive with a typed error
// for anything outside the set.
type AuthMethod string

const (
	AuthAppPassword AuthMethod = "app-password"
	AuthJWT         AuthMethod = "jwt"
	AuthBasic       AuthMethod = "basic"
	AuthCookie      AuthMethod = "cookie"
	AuthAPIKey      AuthMethod = "api-key"
)

// ParseAuthMethod validates a configured method string.
func ParseAuthMethod(s string) (AuthMethod, error) {
	switch m := AuthMethod(s); m {
	case AuthAppPassword, AuthJWT, AuthBasic, AuthCookie, AuthAPIKey:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported authentication method %q", s)
	}
}

// AuthConfig is the credential set for one site. Only the fields the
// selected method needs are consulted, and their presence is enforced at
// authentication time rather than at load time.
type AuthConfig struct {
	Method      AuthMethod
	Username    string
	AppPassword string
	Password    string
	APIKey      string
}

// jwtTokenLifetime is a fixed offset from issuance. The token-issuing
// endpoint does not return an expiry, and the original implementation
// assumed 24 hours; that behavior is kept for compatibility.
const jwtTokenLifetime = 24 * time.Hour

const jwtTokenPath = "/wp-json/jwt-auth/v1/token"

// jwtToken is the transient credential held after a successful JWT
// exchange. Replaced wholesale on re-authentication, never persisted.
type jwtToken struct {
	token       string
	expiresAt   time.Time
	displayName string
	email       string
}

func (t *jwtToken) valid(now time.Time) bool {
	return t != nil && t.token != "" && now.Before(t.expiresAt)
}

// AuthManager owns the authentication state for one site: it performs the
// handshake a scheme requires and derives per-request headers from the
// current state. One instance per site, never shared.
type AuthManager struct {
	siteID  string
	baseURL string
	cfg     AuthConfig
	http    *http.Client

	now func() time.Time

	mu    sync.Mutex
	token *jwtToken
}

// NewAuthManager creates the auth manager for one site.
func NewAuthManager(siteID, baseURL string, cfg AuthConfig, httpClient *http.Client) *AuthManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &AuthManager{
		siteID:  siteID,
		baseURL: baseURL,
		cfg:     cfg,
		http:    httpClient,
		now:     time.Now,
	}
}

// Method returns the configured authentication method.
func (m *AuthManager) Method() AuthMethod {
	return m.cfg.Method
}

// Authenticate performs whatever handshake the configured method needs.
// Header-only schemes (app-password, basic, api-key) just verify their
// required fields are present; jwt performs one token-exchange call.
// All failures surface as a typed *AuthError naming the method.
func (m *AuthManager) Authenticate(ctx context.Context) error {
	switch m.cfg.Method {
	case AuthAppPassword:
		if m.cfg.Username == "" || m.cfg.AppPassword == "" {
			return NewAuthError(AuthAppPassword, "app-password authentication for site %s requires a username and application password", m.siteID)
		}
		return nil

	case AuthBasic:
		if m.cfg.Username == "" || m.cfg.Password == "" {
			return NewAuthError(AuthBasic, "basic authentication for site %s requires a username and password", m.siteID)
		}
		return nil

	case AuthAPIKey:
		if m.cfg.APIKey == "" {
			return NewAuthError(AuthAPIKey, "api-key authentication for site %s requires an API key", m.siteID)
		}
		return nil

	case AuthJWT:
		return m.exchangeToken(ctx)

	case AuthCookie:
		// Declared but deliberately unimplemented.
		return NewAuthError(AuthCookie, "cookie authentication is not implemented")

	default:
		return NewAuthError(m.cfg.Method, "unsupported authentication method %q", m.cfg.Method)
	}
}

// EnsureAuthenticated runs before every request. Header-only schemes are
// re-checked for their required fields; jwt performs the token exchange
// when no valid token is held, on first use and again after the fixed
// 24-hour expiry. With a valid token in hand it is a cheap no-op.
// Concurrent callers may race into a duplicate exchange; the last stored
// token wins and both are valid.
func (m *AuthManager) EnsureAuthenticated(ctx context.Context) error {
	if m.cfg.Method == AuthJWT {
		m.mu.Lock()
		token := m.token
		m.mu.Unlock()
		if token.valid(m.now()) {
			return nil
		}
	}
	return m.Authenticate(ctx)
}

// Headers derives the request headers for the current auth state. It never
// fails: when no valid credential is held (e.g. an expired JWT) it returns
// an empty set and lets the remote API reject the request.
func (m *AuthManager) Headers() http.Header {
	headers := http.Header{}

	switch m.cfg.Method {
	case AuthAppPassword:
		if m.cfg.Username != "" && m.cfg.AppPassword != "" {
			headers.Set("Authorization", basicAuthHeader(m.cfg.Username, m.cfg.AppPassword))
		}

	case AuthBasic:
		if m.cfg.Username != "" && m.cfg.Password != "" {
			headers.Set("Authorization", basicAuthHeader(m.cfg.Username, m.cfg.Password))
		}

	case AuthJWT:
		m.mu.Lock()
		token := m.token
		m.mu.Unlock()
		if token.valid(m.now()) {
			headers.Set("Authorization", "Bearer "+token.token)
		}

	case AuthAPIKey:
		if m.cfg.APIKey != "" {
			headers.Set("X-API-Key", m.cfg.APIKey)
		}

	case AuthCookie:
		// Cookie auth is handled outside this layer; no header.
	}

	return headers
}

// TokenExpiry reports the held JWT token's expiry, or false when no token
// is held. Used by the auth-status tooling.
func (m *AuthManager) TokenExpiry() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return time.Time{}, false
	}
	return m.token.expiresAt, true
}

func basicAuthHeader(username, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+secret))
}

type jwtTokenResponse struct {
	Token       string `json:"token"`
	UserEmail   string `json:"user_email"`
	UserName    string `json:"user_nicename"`
	DisplayName string `json:"user_display_name"`
	Message     string `json:"message"`
}

// exchangeToken performs the one token-exchange call against the site's
// JWT plugin endpoint and stores the resulting token with a fixed
// 24-hour expiry.
func (m *AuthManager) exchangeToken(ctx context.Context) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return NewAuthError(AuthJWT, "jwt authentication for site %s requires a username and password", m.siteID)
	}

	payload, err := json.Marshal(map[string]string{
		"username": m.cfg.Username,
		"password": m.cfg.Password,
	})
	if err != nil {
		return NewAuthError(AuthJWT, "jwt authentication for site %s failed: %s", m.siteID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+jwtTokenPath, bytes.NewReader(payload))
	if err != nil {
		return NewAuthError(AuthJWT, "jwt authentication for site %s failed: %s", m.siteID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return NewAuthError(AuthJWT, "jwt token exchange for site %s failed: %s", m.siteID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return NewAuthError(AuthJWT, "jwt token exchange for site %s failed: %s", m.siteID, err)
	}

	var tokenResp jwtTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.Token == "" {
		if resp.StatusCode != http.StatusOK {
			return NewAuthError(AuthJWT, "jwt token exchange for site %s returned HTTP %d (check your credentials)", m.siteID, resp.StatusCode)
		}
		return NewAuthError(AuthJWT, "jwt token exchange for site %s returned an unexpected response", m.siteID)
	}
	if resp.StatusCode != http.StatusOK {
		msg := tokenResp.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return NewAuthError(AuthJWT, "jwt token exchange for site %s failed: %s (check your credentials)", m.siteID, msg)
	}

	issued := m.now()
	token := &jwtToken{
		token:       tokenResp.Token,
		expiresAt:   issued.Add(jwtTokenLifetime),
		displayName: tokenResp.DisplayName,
		email:       tokenResp.UserEmail,
	}

	// Decode the registered claims for diagnostics only. Validity is the
	// server's concern; expiry here is always the fixed local offset.
	if claims := decodeClaims(tokenResp.Token); claims != nil {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			logging.Debug("Auth", "Site %s issued JWT for subject %s", m.siteID, sub)
		}
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	logging.Info("Auth", "Site %s authenticated via JWT as %s, token valid until %s",
		m.siteID, tokenResp.DisplayName, token.expiresAt.Format(time.RFC3339))
	return nil
}

func decodeClaims(token string) jwt.Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	return parsed.Claims
}
