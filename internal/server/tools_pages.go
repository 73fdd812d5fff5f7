package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPageTools() {
	listTool := mcp.NewTool("wp_list_pages",
		mcp.WithDescription("List pages, optionally filtered by status, search term, or pagination"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("search", mcp.Description("Search term to filter pages by")),
		mcp.WithString("status", mcp.Description("Page status filter")),
		mcp.WithNumber("parent", mcp.Description("Parent page id to filter by")),
		mcp.WithNumber("page", mcp.Description("Result page number")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTool, s.handleListPages)

	getTool := mcp.NewTool("wp_get_page",
		mcp.WithDescription("Get a single page by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Page id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("context", mcp.Description("Rendering context: view, embed, or edit (default view)")),
	)
	s.server.AddTool(getTool, s.handleGetPage)

	createTool := mcp.NewTool("wp_create_page",
		mcp.WithDescription("Create a new page"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Page title"),
		),
		mcp.WithString("content", mcp.Description("Page content (HTML)")),
		mcp.WithString("status", mcp.Description("Page status (default draft)")),
		mcp.WithNumber("parent", mcp.Description("Parent page id")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createTool, s.handleCreatePage)

	updateTool := mcp.NewTool("wp_update_page",
		mcp.WithDescription("Update an existing page"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Page id"),
		),
		mcp.WithString("title", mcp.Description("New page title")),
		mcp.WithString("content", mcp.Description("New page content (HTML)")),
		mcp.WithString("status", mcp.Description("New page status")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTool, s.handleUpdatePage)

	deleteTool := mcp.NewTool("wp_delete_page",
		mcp.WithDescription("Delete a page (moves to trash unless force is set)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Page id"),
		),
		mcp.WithBoolean("force", mcp.Description("Permanently delete instead of moving to trash")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTool, s.handleDeletePage)
}

func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pages, err := client.ListPages(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(pages), nil
}

func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.GetPage(ctx, id, stringArg(args, "context"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(page), nil
}

func (s *Server) handleCreatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.CreatePage(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(page), nil
}

func (s *Server) handleUpdatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	page, err := client.UpdatePage(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(page), nil
}

func (s *Server) handleDeletePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeletePage(ctx, id, boolArg(args, "force"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
