package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPostTools() {
	listTool := mcp.NewTool("wp_list_posts",
		mcp.WithDescription("List posts, optionally filtered by status, search term, author, or pagination"),
		mcp.WithString("site", mcp.Description("Site id to target (defaults to the sole or default site)")),
		mcp.WithString("search", mcp.Description("Search term to filter posts by")),
		mcp.WithString("status", mcp.Description("Post status filter (publish, draft, pending, private)")),
		mcp.WithNumber("author", mcp.Description("Author id to filter by")),
		mcp.WithNumber("page", mcp.Description("Result page number")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTool, s.handleListPosts)

	getTool := mcp.NewTool("wp_get_post",
		mcp.WithDescription("Get a single post by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("context", mcp.Description("Rendering context: view, embed, or edit (default view)")),
	)
	s.server.AddTool(getTool, s.handleGetPost)

	createTool := mcp.NewTool("wp_create_post",
		mcp.WithDescription("Create a new post"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Post title"),
		),
		mcp.WithString("content", mcp.Description("Post content (HTML)")),
		mcp.WithString("status", mcp.Description("Post status (draft, publish, pending, private; default draft)")),
		mcp.WithString("excerpt", mcp.Description("Post excerpt")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createTool, s.handleCreatePost)

	updateTool := mcp.NewTool("wp_update_post",
		mcp.WithDescription("Update an existing post"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		mcp.WithString("title", mcp.Description("New post title")),
		mcp.WithString("content", mcp.Description("New post content (HTML)")),
		mcp.WithString("status", mcp.Description("New post status")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTool, s.handleUpdatePost)

	deleteTool := mcp.NewTool("wp_delete_post",
		mcp.WithDescription("Delete a post (moves to trash unless force is set)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Post id"),
		),
		mcp.WithBoolean("force", mcp.Description("Permanently delete instead of moving to trash")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTool, s.handleDeletePost)
}

func (s *Server) handleListPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	posts, err := client.ListPosts(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(posts), nil
}

func (s *Server) handleGetPost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	post, err := client.GetPost(ctx, id, stringArg(args, "context"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(post), nil
}

func (s *Server) handleCreatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	post, err := client.CreatePost(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(post), nil
}

func (s *Server) handleUpdatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	post, err := client.UpdatePost(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(post), nil
}

func (s *Server) handleDeletePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeletePost(ctx, id, boolArg(args, "force"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
