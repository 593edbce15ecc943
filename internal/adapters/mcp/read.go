package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"nestlist/internal/application"
	"nestlist/internal/application/commands"
	"nestlist/internal/domain"
	"nestlist/internal/ports"
)

// RegisterReadTools adds all read-only list tools to the MCP server.
// defaultList is used when a call omits the list argument.
func RegisterReadTools(s *server.MCPServer, repo ports.ListRepository, defaultList string) {
	s.AddTool(pingTool(), pingHandler())
	s.AddTool(listsTool(), listsHandler(repo))
	s.AddTool(treeTool(), treeHandler(repo, defaultList))
	s.AddTool(searchTool(), searchHandler(repo))
	s.AddTool(canDropTool(), canDropHandler(repo, defaultList))
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("pong"), nil
	}
}

// --- lists ---

func listsTool() mcp.Tool {
	return mcp.NewTool("lists",
		mcp.WithDescription("List the names of all stored lists."),
	)
}

func listsHandler(repo ports.ListRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := commands.NewListNamesCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(names, func(n string) string { return n })
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display a list as a two-level tree. Each line shows the item key and title; children are indented."),
		listArg(),
	)
}

func treeHandler(repo ports.ListRepository, defaultList string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := req.GetString("list", defaultList)

		outline, err := commands.NewLoadOutlineCommand(repo, list).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(outline.Items) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("List %s is empty.", list)), nil
		}

		var sb strings.Builder
		renderTree(&sb, outline)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, outline *domain.Outline) {
	for _, row := range outline.Flatten() {
		prefix := ""
		if row.Level() > 0 {
			prefix = "  "
		}
		fmt.Fprintf(sb, "%s%s  %s\n", prefix, row.Key, row.Title)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search item titles and notes across lists. Returns matching items with their keys."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("list",
			mcp.Description("Restrict results to this list. Omit to search every list."),
		),
	)
}

func searchHandler(repo ports.ListRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(repo, query).
			InList(req.GetString("list", "")).
			Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return formatEntities(results, formatResult)
	}
}

// --- can_drop ---

func canDropTool() mcp.Tool {
	return mcp.NewTool("can_drop",
		mcp.WithDescription("Check whether an item may be dropped before, after or as a child of another item, without moving it."),
		mcp.WithString("key",
			mcp.Description("Key of the dragged item"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("Key of the item hovered over"),
			mcp.Required(),
		),
		modeArg(),
		listArg(),
	)
}

func canDropHandler(repo ports.ListRepository, defaultList string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode, err := application.ParseInsertionMode(req.GetString("mode", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewCheckDropCommand(repo,
			req.GetString("list", defaultList),
			req.GetString("key", ""),
			req.GetString("target", ""),
			mode)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if res.CanDrop {
			return mcp.NewToolResultText("yes"), nil
		}
		return mcp.NewToolResultText("no: " + res.Reason), nil
	}
}

// --- helpers ---

func listArg() mcp.ToolOption {
	return mcp.WithString("list",
		mcp.Description("List name. Omit to use the configured default list."),
	)
}

func modeArg() mcp.ToolOption {
	return mcp.WithString("mode",
		mcp.Description("Where the item lands relative to the target"),
		mcp.Enum("before", "after", "child"),
		mcp.Required(),
	)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatResult(r domain.SearchResult) string {
	if r.Parent != "" {
		return fmt.Sprintf("%s  %s/%s  %s", r.List, r.Parent, r.Key, r.Title)
	}
	return fmt.Sprintf("%s  %s  %s", r.List, r.Key, r.Title)
}
