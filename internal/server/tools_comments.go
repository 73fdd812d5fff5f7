package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCommentTools() {
	listTool := mcp.NewTool("wp_list_comments",
		mcp.WithDescription("List comments, optionally filtered by post, status, or search term"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithNumber("post", mcp.Description("Post id to list comments for")),
		mcp.WithString("status", mcp.Description("Comment status filter (approve, hold, spam, trash)")),
		mcp.WithString("search", mcp.Description("Search term to filter comments by")),
		mcp.WithNumber("page", mcp.Description("Result page number")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTool, s.handleListComments)

	getTool := mcp.NewTool("wp_get_comment",
		mcp.WithDescription("Get a single comment by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Comment id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(getTool, s.handleGetComment)

	createTool := mcp.NewTool("wp_create_comment",
		mcp.WithDescription("Create a comment on a post"),
		mcp.WithNumber("post",
			mcp.Required(),
			mcp.Description("Post id to comment on"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Comment text"),
		),
		mcp.WithNumber("parent", mcp.Description("Parent comment id for a threaded reply")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createTool, s.handleCreateComment)

	updateTool := mcp.NewTool("wp_update_comment",
		mcp.WithDescription("Update an existing comment"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Comment id"),
		),
		mcp.WithString("content", mcp.Description("New comment text")),
		mcp.WithString("status", mcp.Description("New comment status (approve, hold, spam, trash)")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTool, s.handleUpdateComment)

	deleteTool := mcp.NewTool("wp_delete_comment",
		mcp.WithDescription("Delete a comment (moves to trash unless force is set)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Comment id"),
		),
		mcp.WithBoolean("force", mcp.Description("Permanently delete instead of moving to trash")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTool, s.handleDeleteComment)
}

func (s *Server) handleListComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comments, err := client.ListComments(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(comments), nil
}

func (s *Server) handleGetComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comment, err := client.GetComment(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(comment), nil
}

func (s *Server) handleCreateComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comment, err := client.CreateComment(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(comment), nil
}

func (s *Server) handleUpdateComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comment, err := client.UpdateComment(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(comment), nil
}

func (s *Server) handleDeleteComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeleteComment(ctx, id, boolArg(args, "force"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
