package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTaxonomyTools() {
	listCategoriesTool := mcp.NewTool("wp_list_categories",
		mcp.WithDescription("List categories, optionally filtered by search term or parent"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("search", mcp.Description("Search term to filter categories by")),
		mcp.WithNumber("parent", mcp.Description("Parent category id to filter by")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listCategoriesTool, s.handleListCategories)

	getCategoryTool := mcp.NewTool("wp_get_category",
		mcp.WithDescription("Get a single category by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Category id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(getCategoryTool, s.handleGetCategory)

	createCategoryTool := mcp.NewTool("wp_create_category",
		mcp.WithDescription("Create a new category"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category name"),
		),
		mcp.WithString("description", mcp.Description("Category description")),
		mcp.WithNumber("parent", mcp.Description("Parent category id")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createCategoryTool, s.handleCreateCategory)

	updateCategoryTool := mcp.NewTool("wp_update_category",
		mcp.WithDescription("Update an existing category"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Category id"),
		),
		mcp.WithString("name", mcp.Description("New category name")),
		mcp.WithString("description", mcp.Description("New category description")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateCategoryTool, s.handleUpdateCategory)

	deleteCategoryTool := mcp.NewTool("wp_delete_category",
		mcp.WithDescription("Delete a category (taxonomy terms have no trash, deletion is permanent)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Category id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteCategoryTool, s.handleDeleteCategory)

	listTagsTool := mcp.NewTool("wp_list_tags",
		mcp.WithDescription("List tags, optionally filtered by search term"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("search", mcp.Description("Search term to filter tags by")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTagsTool, s.handleListTags)

	getTagTool := mcp.NewTool("wp_get_tag",
		mcp.WithDescription("Get a single tag by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Tag id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(getTagTool, s.handleGetTag)

	createTagTool := mcp.NewTool("wp_create_tag",
		mcp.WithDescription("Create a new tag"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Tag name"),
		),
		mcp.WithString("description", mcp.Description("Tag description")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createTagTool, s.handleCreateTag)

	updateTagTool := mcp.NewTool("wp_update_tag",
		mcp.WithDescription("Update an existing tag"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Tag id"),
		),
		mcp.WithString("name", mcp.Description("New tag name")),
		mcp.WithString("description", mcp.Description("New tag description")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTagTool, s.handleUpdateTag)

	deleteTagTool := mcp.NewTool("wp_delete_tag",
		mcp.WithDescription("Delete a tag (taxonomy terms have no trash, deletion is permanent)"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Tag id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTagTool, s.handleDeleteTag)
}

func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	categories, err := client.ListCategories(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(categories), nil
}

func (s *Server) handleGetCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	category, err := client.GetCategory(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(category), nil
}

func (s *Server) handleCreateCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	category, err := client.CreateCategory(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(category), nil
}

func (s *Server) handleUpdateCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	category, err := client.UpdateCategory(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(category), nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeleteCategory(ctx, id, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (s *Server) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tags, err := client.ListTags(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tags), nil
}

func (s *Server) handleGetTag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tag, err := client.GetTag(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tag), nil
}

func (s *Server) handleCreateTag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tag, err := client.CreateTag(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tag), nil
}

func (s *Server) handleUpdateTag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tag, err := client.UpdateTag(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(tag), nil
}

func (s *Server) handleDeleteTag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeleteTag(ctx, id, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}
