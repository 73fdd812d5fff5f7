package server

import (
	"context"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/wordpress"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerMediaTools() {
	listTool := mcp.NewTool("wp_list_media",
		mcp.WithDescription("List media library items, optionally filtered by type or search term"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("search", mcp.Description("Search term to filter media by")),
		mcp.WithString("media_type", mcp.Description("Media type filter (image, video, audio, application)")),
		mcp.WithNumber("page", mcp.Description("Result page number")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTool, s.handleListMedia)

	getTool := mcp.NewTool("wp_get_media",
		mcp.WithDescription("Get a single media item by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Media item id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(getTool, s.handleGetMedia)

	uploadTool := mcp.NewTool("wp_upload_media",
		mcp.WithDescription("Upload a local file to the media library (100 MB limit)"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path of the local file to upload"),
		),
		mcp.WithString("title", mcp.Description("Media title")),
		mcp.WithString("alt_text", mcp.Description("Alternative text for accessibility")),
		mcp.WithString("caption", mcp.Description("Media caption")),
		mcp.WithString("description", mcp.Description("Media description")),
		mcp.WithNumber("post_id", mcp.Description("Post id to attach the media to")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(uploadTool, s.handleUploadMedia)

	updateTool := mcp.NewTool("wp_update_media",
		mcp.WithDescription("Update a media item's metadata"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Media item id"),
		),
		mcp.WithString("title", mcp.Description("New media title")),
		mcp.WithString("alt_text", mcp.Description("New alternative text")),
		mcp.WithString("caption", mcp.Description("New media caption")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTool, s.handleUpdateMedia)

	deleteTool := mcp.NewTool("wp_delete_media",
		mcp.WithDescription("Delete a media item (moves to trash unless force is set)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Media item id"),
		),
		mcp.WithBoolean("force", mcp.Description("Permanently delete instead of moving to trash")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTool, s.handleDeleteMedia)
}

func (s *Server) handleListMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := client.ListMedia(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(items), nil
}

func (s *Server) handleGetMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, err := client.GetMedia(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(item), nil
}

func (s *Server) handleUploadMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, err := client.UploadMedia(ctx, wordpress.UploadMediaRequest{
		FilePath:    stringArg(args, "file_path"),
		Title:       stringArg(args, "title"),
		AltText:     stringArg(args, "alt_text"),
		Caption:     stringArg(args, "caption"),
		Description: stringArg(args, "description"),
		PostID:      intArg(args, "post_id"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(item), nil
}

func (s *Server) handleUpdateMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, err := client.UpdateMedia(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(item), nil
}

func (s *Server) handleDeleteMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeleteMedia(ctx, id, boolArg(args, "force"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
