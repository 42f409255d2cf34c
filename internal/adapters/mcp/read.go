package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linksync/internal/adapters/workspace"
	"linksync/internal/application/commands"
	"linksync/internal/domain"
)

// Opener opens a fresh workspace for one tool call
type Opener func() (*workspace.Workspace, error)

// RegisterReadTools adds all read-only document tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, open Opener) {
	s.AddTool(treeTool(), treeHandler(open))
	s.AddTool(hasLinkTool(), hasLinkHandler(open))
	s.AddTool(inspectTool(), inspectHandler(open))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the document as a tree. Linked copies are marked with their source id."),
	)
}

func treeHandler(open Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		trees, err := commands.NewBuildTreeCommand(w.Doc, w.Meta).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		for _, tree := range trees {
			tree.ExpandAll()
			renderTree(&sb, tree, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	fmt.Fprintf(sb, "%s%s %s %q", prefix, node.ID, node.Type, node.Name)
	if node.Linked {
		fmt.Fprintf(sb, " -> %s", node.SourceID)
	}
	sb.WriteByte('\n')
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- has_link ---

func hasLinkTool() mcp.Tool {
	return mcp.NewTool("has_link",
		mcp.WithDescription("Report whether a node is a linked copy. Without node_id the first selected node is checked."),
		mcp.WithString("node_id",
			mcp.Description("Node id (e.g. 1:12). Omit to use the document selection."),
		),
	)
}

func hasLinkHandler(open Opener) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		selection, err := w.SelectionOrIDs(idList(req.GetString("node_id", "")))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%t", commands.NewHasLinkQuery(w.Meta, selection).Execute())), nil
	}
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Show a node's identity record, resolved source and property values as JSON."),
		mcp.WithString("node_id",
			mcp.Description("Node id (e.g. 1:12)"),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Optional JSONPath applied to the result (e.g. $.link.sourceId)"),
		),
		mcp.WithBoolean("resolve",
			mcp.Description("Also try the import fallback when the source id is gone"),
		),
	)
}

func inspectHandler(open Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		cmd := commands.NewInspectNodeCommand(w.Doc, w.Meta, req.GetString("node_id", ""))
		cmd.Resolve = req.GetBool("resolve", false)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		query := req.GetString("query", "")
		if query == "" {
			return mcp.NewToolResultText(commands.RenderJSON(result.Data())), nil
		}
		matches, err := result.Query(query)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(commands.RenderJSON(matches)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// idList splits a comma-separated id list
func idList(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
