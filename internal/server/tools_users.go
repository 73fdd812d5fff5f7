package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerUserTools() {
	listTool := mcp.NewTool("wp_list_users",
		mcp.WithDescription("List users, optionally filtered by role or search term"),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("search", mcp.Description("Search term to filter users by")),
		mcp.WithString("roles", mcp.Description("Role filter (comma-separated role slugs)")),
		mcp.WithNumber("page", mcp.Description("Result page number")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (max 100)")),
	)
	s.server.AddTool(listTool, s.handleListUsers)

	getTool := mcp.NewTool("wp_get_user",
		mcp.WithDescription("Get a single user by id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("User id"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
		mcp.WithString("context", mcp.Description("Rendering context: view, embed, or edit (default view)")),
	)
	s.server.AddTool(getTool, s.handleGetUser)

	currentTool := mcp.NewTool("wp_get_current_user",
		mcp.WithDescription("Get the user account the configured credentials belong to"),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(currentTool, s.handleGetCurrentUser)

	createTool := mcp.NewTool("wp_create_user",
		mcp.WithDescription("Create a new user account"),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Login name for the new user"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address for the new user"),
		),
		mcp.WithString("password",
			mcp.Required(),
			mcp.Description("Password for the new user"),
		),
		mcp.WithString("name", mcp.Description("Display name")),
		mcp.WithString("roles", mcp.Description("Role slug to assign (default subscriber)")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(createTool, s.handleCreateUser)

	updateTool := mcp.NewTool("wp_update_user",
		mcp.WithDescription("Update an existing user account"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("User id"),
		),
		mcp.WithString("email", mcp.Description("New email address")),
		mcp.WithString("name", mcp.Description("New display name")),
		mcp.WithString("roles", mcp.Description("New role slug")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(updateTool, s.handleUpdateUser)

	deleteTool := mcp.NewTool("wp_delete_user",
		mcp.WithDescription("Delete a user, optionally reassigning their content to another user"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("User id"),
		),
		mcp.WithNumber("reassign", mcp.Description("User id to reassign the deleted user's content to (implies force)")),
		mcp.WithBoolean("force", mcp.Description("Permanently delete the user")),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(deleteTool, s.handleDeleteUser)

	appPasswordsTool := mcp.NewTool("wp_list_application_passwords",
		mcp.WithDescription("List a user's application passwords (metadata only, no secrets)"),
		mcp.WithNumber("user_id",
			mcp.Required(),
			mcp.Description("User id to list application passwords for"),
		),
		mcp.WithString("site", mcp.Description("Site id to target")),
	)
	s.server.AddTool(appPasswordsTool, s.handleListApplicationPasswords)
}

func (s *Server) handleListUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	users, err := client.ListUsers(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(users), nil
}

func (s *Server) handleGetUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	user, err := client.GetUser(ctx, id, stringArg(args, "context"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(user), nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(user), nil
}

func (s *Server) handleCreateUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	user, err := client.CreateUser(ctx, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(user), nil
}

func (s *Server) handleUpdateUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	user, err := client.UpdateUser(ctx, id, fieldArgs(args))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(user), nil
}

func (s *Server) handleDeleteUser(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := idArg(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := client.DeleteUser(ctx, id, boolArg(args, "force"), intArg(args, "reassign"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result), nil
}

func (s *Server) handleListApplicationPasswords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	client, err := s.siteFor(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	userID, err := idArg(args, "user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	passwords, err := client.ListApplicationPasswords(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(passwords), nil
}
