package wordpress

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite(id, baseURL, username, appPassword string) config.Site {
	return config.Site{
		ID:   id,
		Name: id,
		Settings: config.Settings{
			URL:         baseURL,
			Username:    username,
			AppPassword: appPassword,
			TimeoutMS:   2000,
		},
	}
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(testSite("test", server.URL, "admin", "secret"))
	require.NoError(t, err)
	return client
}

func fastRetries(t *testing.T) {
	t.Helper()
	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	t.Cleanup(func() { retryBaseDelay = old })
}

func TestRequestSendsAuthAndDefaultHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 1})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.CreatePost(context.Background(), map[string]interface{}{"title": "Hello"})
	require.NoError(t, err)

	assert.Equal(t, "/wp-json/wp/v2/posts", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	assert.Equal(t, expected, gotAuth)
}

func jwtSite(id, baseURL string) config.Site {
	site := testSite(id, baseURL, "admin", "")
	site.Settings.AppPassword = ""
	site.Settings.Password = "jwt-pass"
	site.Settings.AuthMethod = "jwt"
	return site
}

// jwtBackend serves both the token endpoint and the posts collection so a
// domain call can be observed end to end.
func jwtBackend(t *testing.T, exchanges, posts *int, gotAuth *string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/jwt-auth/v1/token":
			*exchanges++
			json.NewEncoder(w).Encode(map[string]string{
				"token":             "issued-token",
				"user_display_name": "Admin",
			})
		case "/wp-json/wp/v2/posts":
			*posts++
			*gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]Post{{ID: 1}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}
}

func TestJWTTokenExchangedBeforeFirstRequest(t *testing.T) {
	var exchanges, posts int
	var gotAuth string
	server := httptest.NewServer(jwtBackend(t, &exchanges, &posts, &gotAuth))
	defer server.Close()

	client, err := NewClient(jwtSite("jwt-site", server.URL))
	require.NoError(t, err)

	result, err := client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 1, exchanges)
	assert.Equal(t, "Bearer issued-token", gotAuth)

	// The held token is reused, not re-exchanged per call.
	_, err = client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, exchanges)
	assert.Equal(t, 2, posts)
}

func TestJWTReauthenticatesAfterExpiry(t *testing.T) {
	var exchanges, posts int
	var gotAuth string
	server := httptest.NewServer(jwtBackend(t, &exchanges, &posts, &gotAuth))
	defer server.Close()

	client, err := NewClient(jwtSite("jwt-site", server.URL))
	require.NoError(t, err)

	now := time.Now()
	client.auth.now = func() time.Time { return now }

	_, err = client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, exchanges)

	now = now.Add(jwtTokenLifetime + time.Minute)

	_, err = client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, exchanges)
	assert.Equal(t, "Bearer issued-token", gotAuth)
}

func TestJWTExchangeFailureFailsTheRequest(t *testing.T) {
	var posts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/wp-json/jwt-auth/v1/token":
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials."})
		default:
			posts++
		}
	}))
	defer server.Close()

	client, err := NewClient(jwtSite("jwt-site", server.URL))
	require.NoError(t, err)

	_, err = client.ListPosts(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 0, posts)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, AuthJWT, authErr.Method)
	assert.Contains(t, err.Error(), "check your credentials")
	assert.NotContains(t, err.Error(), "jwt-pass")
}

func TestConcurrentSitesDoNotLeakCredentials(t *testing.T) {
	type seen struct {
		mu      sync.Mutex
		headers []string
	}

	newSiteServer := func(record *seen) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record.mu.Lock()
			record.headers = append(record.headers, r.Header.Get("Authorization"))
			record.mu.Unlock()
			json.NewEncoder(w).Encode([]Post{})
		}))
	}

	var seenA, seenB seen
	serverA := newSiteServer(&seenA)
	defer serverA.Close()
	serverB := newSiteServer(&seenB)
	defer serverB.Close()

	clientA, err := NewClient(testSite("a", serverA.URL, "user-a", "pass-a"))
	require.NoError(t, err)
	clientB, err := NewClient(testSite("b", serverB.URL, "user-b", "pass-b"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := clientA.ListPosts(context.Background(), nil)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := clientB.ListPosts(context.Background(), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	wantA := "Basic " + base64.StdEncoding.EncodeToString([]byte("user-a:pass-a"))
	wantB := "Basic " + base64.StdEncoding.EncodeToString([]byte("user-b:pass-b"))

	require.Len(t, seenA.headers, 10)
	for _, h := range seenA.headers {
		assert.Equal(t, wantA, h)
	}
	require.Len(t, seenB.headers, 10)
	for _, h := range seenB.headers {
		assert.Equal(t, wantB, h)
	}
}

func TestRetryOnServerErrorThenSuccess(t *testing.T) {
	fastRetries(t)

	var calls int
	var mu sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]Post{{ID: 1}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	posts, err := client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 3, calls)
}

func TestNoRetryOnClientError(t *testing.T) {
	fastRetries(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_invalid_param",
			"message": "Invalid parameter: status",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListPosts(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, ErrorCode("rest_invalid_param"), apiErr.Code)
	assert.Contains(t, apiErr.Message, "Invalid parameter: status")
}

func TestNotFoundStatusPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_post_invalid_id",
			"message": "Invalid post ID.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetPost(context.Background(), 9999, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	// The real status survives classification: a 404 is not a 500.
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestUnauthorizedBecomesAuthErrorAndIsNotRetried(t *testing.T) {
	fastRetries(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_cannot_access",
			"message": "Sorry, you are not allowed to do that.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListPosts(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Contains(t, err.Error(), "check your credentials")
	assert.Contains(t, err.Error(), "test")
	assert.NotContains(t, err.Error(), "secret")
}

func TestForbiddenStatusPreservedOnAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_forbidden",
			"message": "Sorry, you are not allowed to do that.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListPosts(context.Background(), nil)
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	// A 403 is not flattened into a 401.
	assert.Equal(t, http.StatusForbidden, authErr.Status)
}

func TestRateLimitedIsRetried(t *testing.T) {
	fastRetries(t)

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListPosts(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, maxAttempts, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeRateLimited, apiErr.Code)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}

func TestDeleteForceSemantics(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"deleted": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.DeletePost(context.Background(), 5, false)
	require.NoError(t, err)
	assert.Equal(t, "false", gotQuery.Get("force"))

	_, err = client.DeletePost(context.Background(), 5, true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotQuery.Get("force"))
}

func TestDeleteUserReassignImpliesForce(t *testing.T) {
	var gotQuery url.Values
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotPath = r.URL.Path
		w.Write([]byte(`{"deleted": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.DeleteUser(context.Background(), 4, false, 7)
	require.NoError(t, err)

	assert.Equal(t, "/wp-json/wp/v2/users/4", gotPath)
	assert.Equal(t, "7", gotQuery.Get("reassign"))
	assert.Equal(t, "true", gotQuery.Get("force"))
}

func TestUpdateStripsIDFromBody(t *testing.T) {
	var gotBody map[string]interface{}
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Post{ID: 5})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.UpdatePost(context.Background(), 5, map[string]interface{}{
		"id":    5,
		"title": "Updated",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/wp-json/wp/v2/posts/5", gotPath)
	assert.Equal(t, "Updated", gotBody["title"])
	assert.NotContains(t, gotBody, "id")
}

func TestListFiltersAreStringified(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]Post{})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListPosts(context.Background(), map[string]interface{}{
		"per_page":   float64(10),
		"sticky":     true,
		"categories": []interface{}{float64(1), float64(2)},
		"search":     "hello world",
	})
	require.NoError(t, err)

	assert.Equal(t, "10", gotQuery.Get("per_page"))
	assert.Equal(t, "true", gotQuery.Get("sticky"))
	assert.Equal(t, "1,2", gotQuery.Get("categories"))
	assert.Equal(t, "hello world", gotQuery.Get("search"))
}

func TestInvalidIDFailsBeforeNetwork(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetPost(context.Background(), 0, "")
	require.Error(t, err)
	assert.Equal(t, 0, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestPing(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json", r.URL.Path)
		w.Write([]byte(`{"name": "Test Site"}`))
	}))
	defer healthy.Close()

	client := newTestClient(t, healthy)
	assert.True(t, client.Ping(context.Background()))

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	broken.Close() // connection refused

	offline := newTestClient(t, broken)
	assert.False(t, offline.Ping(context.Background()))
}

func TestTimeoutClassification(t *testing.T) {
	fastRetries(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	site := testSite("slow", server.URL, "admin", "secret")
	site.Settings.TimeoutMS = 20
	client, err := NewClient(site)
	require.NoError(t, err)

	_, err = client.ListPosts(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeTimeout, apiErr.Code)
	assert.Equal(t, http.StatusRequestTimeout, apiErr.Status)
}
