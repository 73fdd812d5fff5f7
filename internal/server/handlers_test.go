package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/registry"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/wordpress"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Server, *httptest.Server) {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)

	sites, err := registry.New(&config.Config{Sites: []config.Site{{
		ID:   "test",
		Name: "Test Site",
		Settings: config.Settings{
			URL:         backend.URL,
			Username:    "admin",
			AppPassword: "secret",
		},
	}}})
	require.NoError(t, err)

	return New(sites, Options{Name: "test", Version: "test"}), backend
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return textContent.Text
}

func TestHandleListPosts(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "draft", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]wordpress.Post{{ID: 1}, {ID: 2}})
	})

	result, err := s.handleListPosts(context.Background(),
		callRequest("wp_list_posts", map[string]interface{}{"status": "draft"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var posts []wordpress.Post
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &posts))
	assert.Len(t, posts, 2)
}

func TestHandlerUnknownSiteBecomesToolError(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend")
	})

	result, err := s.handleListPosts(context.Background(),
		callRequest("wp_list_posts", map[string]interface{}{"site": "nope"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `unknown site "nope"`)
	assert.Contains(t, text, "test")
}

func TestHandlerInvalidIDBecomesToolError(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend")
	})

	result, err := s.handleGetPost(context.Background(),
		callRequest("wp_get_post", map[string]interface{}{"id": float64(0)}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "parameter_too_small")
}

func TestHandlerAPIFailureBecomesToolError(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "rest_post_invalid_id",
			"message": "Invalid post ID.",
		})
	})

	result, err := s.handleGetPost(context.Background(),
		callRequest("wp_get_post", map[string]interface{}{"id": float64(9999)}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "rest_post_invalid_id")
}

func TestHandleDeleteUserForwardsReassign(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/users/4", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("reassign"))
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		w.Write([]byte(`{"deleted": true}`))
	})

	result, err := s.handleDeleteUser(context.Background(),
		callRequest("wp_delete_user", map[string]interface{}{
			"id":       float64(4),
			"reassign": float64(7),
		}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestHandlePing(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json", r.URL.Path)
		w.Write([]byte(`{"name": "up"}`))
	})

	result, err := s.handlePing(context.Background(), callRequest("wp_ping", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var pings []registry.PingResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &pings))
	require.Len(t, pings, 1)
	assert.True(t, pings[0].Reachable)
	assert.Equal(t, "test", pings[0].SiteID)
}

func TestHandleAuthStatus(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/users/me", r.URL.Path)
		json.NewEncoder(w).Encode(wordpress.User{ID: 1, Name: "Admin"})
	})

	result, err := s.handleAuthStatus(context.Background(),
		callRequest("wp_get_auth_status", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var status authStatus
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &status))
	assert.True(t, status.Authenticated)
	assert.Equal(t, "app-password", status.Method)
	assert.Equal(t, "Admin", status.User)
}

func TestHandleAuthStatusRejectedCredentials(t *testing.T) {
	s, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Sorry, you are not allowed to do that."})
	})

	result, err := s.handleAuthStatus(context.Background(),
		callRequest("wp_get_auth_status", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var status authStatus
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &status))
	assert.False(t, status.Authenticated)
	assert.Contains(t, status.Error, "check your credentials")
	assert.NotContains(t, status.Error, "secret")
}

func TestFieldArgsStripsControlKeys(t *testing.T) {
	fields := fieldArgs(map[string]interface{}{
		"site":  "prod",
		"id":    float64(5),
		"title": "Hello",
	}, "id")
	assert.Equal(t, map[string]interface{}{"title": "Hello"}, fields)
}

func TestParseTransport(t *testing.T) {
	for _, valid := range []string{"stdio", "sse", "streamable-http"} {
		tr, err := ParseTransport(valid)
		require.NoError(t, err)
		assert.Equal(t, Transport(valid), tr)
	}

	tr, err := ParseTransport("")
	require.NoError(t, err)
	assert.Equal(t, TransportStdio, tr)

	_, err = ParseTransport("websocket")
	require.Error(t, err)
}
