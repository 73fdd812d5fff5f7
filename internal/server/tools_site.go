package server

import (
	"context"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/wordpress"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerSiteTools() {
	getSettingsTool := mcp.NewTool("wp_get_site_settings",
		mcp.WithDescription("Get the site-wide settings (title, tagline, timezone, formats)"),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(getSettingsTool, s.handleGetSiteSettings)

	updateSettingsTool := mcp.NewTool("wp_update_site_settings",
		mcp.WithDescription("Update site-wide settings"),
		mcp.WithString("title", mcp.Description("New site title")),
		mcp.WithString("description", mcp.Description("New site tagline")),
		mcp.WithString("timezone_string", mcp.Description("New timezone (e.g. Europe/Copenhagen)")),
		mcp.WithString("date_format", mcp.Description("New date format")),
		mcp.WithString("time_format", mcp.Description("New time format")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateSettingsTool, s.handleUpdateSiteSettings)

	searchTool := mcp.NewTool("wp_search_site",
		mcp.WithDescription("Search across the site's content (posts, pages, and other subtypes)"),
		mcp.WithString("term",
			mcp.Required(),
			mcp.Description("Search term"),
		),
		mcp.WithArray("subtypes", mcp.Description("Content subtypes to search (post, page); empty searches everything")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(searchTool, s.handleSearchSite)

	pingTool := mcp.NewTool("wp_ping",
		mcp.WithDescription("Check connectivity to every configured site"),
	)
	s.server.AddTool(pingTool, s.handlePing)

	authStatusTool := mcp.NewTool("wp_get_auth_status",
		mcp.WithDescription("Check authentication status for a site by fetching the current user"),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(authStatusTool, s.handleAuthStatus)
}

func (s *Server) handleGetSiteSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings, err := client.GetSettings(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(settings), nil
}

func (s *Server) handleUpdateSiteSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	settings, err := client.UpdateSettings(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(settings), nil
}

func (s *Server) handleSearchSite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	term := stringArg(args, "term")
	subtypes := stringSliceArg(args, "subtypes")
	results, err := client.Search(ctx, term, subtypes, fieldArgs(args, "term", "subtypes"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(results), nil
}

func (s *Server) handlePing(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.sites.PingAll(ctx)), nil
}

// authStatus is the wp_get_auth_status result shape.
type authStatus struct {
	Site          string `json:"site"`
	Method        string `json:"method"`
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
	TokenExpires  string `json:"token_expires,omitempty"`
	Error         string `json:"error,omitempty"`
}

// handleAuthStatus verifies credentials by authenticating and fetching
// the current user. A failure is part of the answer, not a tool error.
func (s *Server) handleAuthStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	status := authStatus{
		Site:   client.ID(),
		Method: string(client.Auth().Method()),
	}

	if err := client.Auth().Authenticate(ctx); err != nil {
		status.Error = err.Error()
		return jsonResult(status), nil
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		status.Error = err.Error()
		return jsonResult(status), nil
	}

	status.Authenticated = true
	status.User = user.Name
	if client.Auth().Method() == wordpress.AuthJWT {
		if expiry, ok := client.Auth().TokenExpiry(); ok {
			status.TokenExpires = expiry.UTC().Format(time.RFC3339)
		}
	}
	return jsonResult(status), nil
}
