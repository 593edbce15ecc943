package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"nestlist/internal/application"
	"nestlist/internal/application/commands"
	"nestlist/internal/ports"
)

// RegisterWriteTools adds all tools that change lists to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.ListRepository, defaultList string, log logrus.FieldLogger) {
	s.AddTool(createTool(), createHandler(repo, defaultList))
	s.AddTool(moveTool(), moveHandler(repo, defaultList, log))
	s.AddTool(renameTool(), renameHandler(repo, defaultList))
	s.AddTool(deleteTool(), deleteHandler(repo, defaultList))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a new item. Without a parent it is appended at the top level; with a parent key it is appended to that item's children."),
		mcp.WithString("title",
			mcp.Description("Title of the new item"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Key of a top-level item to create the child under"),
		),
		mcp.WithString("note",
			mcp.Description("Optional note stored with the item"),
		),
		listArg(),
	)
}

func createHandler(repo ports.ListRepository, defaultList string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCommand(repo,
			req.GetString("list", defaultList),
			req.GetString("parent", ""),
			req.GetString("title", ""))
		cmd.Note = req.GetString("note", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Drop an item before, after or as the first child of a target item. Items with children can only be placed at the top level."),
		mcp.WithString("key",
			mcp.Description("Key of the item to move"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Key of the item to drop on"),
			mcp.Required(),
		),
		modeArg(),
		listArg(),
	)
}

func moveHandler(repo ports.ListRepository, defaultList string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode, err := application.ParseInsertionMode(req.GetString("mode", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewMoveCommand(repo,
			req.GetString("list", defaultList),
			req.GetString("key", ""),
			req.GetString("target", ""),
			mode).WithLogger(log)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Change the title of an item."),
		mcp.WithString("key",
			mcp.Description("Key of the item to rename"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
			mcp.Required(),
		),
		listArg(),
	)
}

func renameHandler(repo ports.ListRepository, defaultList string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameCommand(repo,
			req.GetString("list", defaultList),
			req.GetString("key", ""),
			req.GetString("title", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete an item. Deleting a top-level item also deletes its children."),
		mcp.WithString("key",
			mcp.Description("Key of the item to delete"),
			mcp.Required(),
		),
		listArg(),
	)
}

func deleteHandler(repo ports.ListRepository, defaultList string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteCommand(repo,
			req.GetString("list", defaultList),
			req.GetString("key", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
