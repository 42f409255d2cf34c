package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linksync/internal/application"
	"linksync/internal/application/commands"
)

// RegisterWriteTools adds all document-changing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, open Opener) {
	s.AddTool(selectTool(), selectHandler(open))
	s.AddTool(createLinksTool(), createLinksHandler(open))
	s.AddTool(syncTool(), syncHandler(open))
	s.AddTool(goToSourceTool(), goToSourceHandler(open))
}

// --- select ---

func selectTool() mcp.Tool {
	return mcp.NewTool("select",
		mcp.WithDescription("Replace the document selection. Later tool calls without node ids act on it."),
		mcp.WithString("node_ids",
			mcp.Description("Comma-separated node ids. Empty clears the selection."),
		),
	)
}

func selectHandler(open Opener) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		ids := idList(req.GetString("node_ids", ""))
		if err := w.Doc.SelectIDs(ids...); err != nil {
			return toolError(err)
		}
		if err := w.Save(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Selected %d node(s)", len(ids))), nil
	}
}

// --- create_links ---

func createLinksTool() mcp.Tool {
	return mcp.NewTool("create_links",
		mcp.WithDescription("Create a detached, linked copy of each component, component set or instance. The copies become the new selection."),
		mcp.WithString("node_ids",
			mcp.Description("Comma-separated node ids. Omit to use the document selection."),
		),
	)
}

func createLinksHandler(open Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		selection, err := w.SelectionOrIDs(idList(req.GetString("node_ids", "")))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewCreateLinksCommand(w.Doc, w.Meta, selection)
		cmd.Margin = w.LinkMargin
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Created) > 0 {
			if err := w.Save(); err != nil {
				return toolError(err)
			}
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, n := range result.Created {
			fmt.Fprintf(&sb, "%s  %s\n", n.ID(), n.Name())
		}
		for _, e := range result.Failures {
			fmt.Fprintf(&sb, "failed: %v\n", e)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Copy properties from sources onto every linked node in the selected subtrees."),
		mcp.WithString("node_ids",
			mcp.Description("Comma-separated node ids. Omit to use the document selection."),
		),
		mcp.WithString("groups",
			mcp.Description("Only sync these groups: name, fills, strokes, effects, corners, text, flow, dimension, gap, padding"),
		),
		mcp.WithString("skip",
			mcp.Description("Groups to leave untouched"),
		),
	)
}

func syncHandler(open Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		cfg, err := application.ResolveSyncConfig(w.Sync, req.GetString("groups", ""), req.GetString("skip", ""))
		if err != nil {
			return toolError(err)
		}
		selection, err := w.SelectionOrIDs(idList(req.GetString("node_ids", "")))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewSyncSelectionCommand(w.Doc, w.Meta, selection, cfg).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Stats.Succeeded > 0 {
			if err := w.Save(); err != nil {
				return toolError(err)
			}
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, n := range result.Nodes {
			if !n.Succeeded() {
				fmt.Fprintf(&sb, "%s  source not found\n", n.Derived.ID())
				continue
			}
			fmt.Fprintf(&sb, "%s  <- %s (%s)  copied %d, skipped %d, rejected %d\n",
				n.Derived.ID(), n.Source.ID(), n.Via, n.Report.Copied, n.Report.Skipped, n.Report.Rejected)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- go_to_source ---

func goToSourceTool() mcp.Tool {
	return mcp.NewTool("go_to_source",
		mcp.WithDescription("Select the source of a linked node, switching page if needed."),
		mcp.WithString("node_id",
			mcp.Description("Linked node id. Omit to use the first selected node."),
		),
	)
}

func goToSourceHandler(open Opener) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := open()
		if err != nil {
			return toolError(err)
		}
		defer w.Close()

		selection, err := w.SelectionOrIDs(idList(req.GetString("node_id", "")))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewGoToSourceCommand(w.Doc, w.Meta, selection).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Source == nil {
			return mcp.NewToolResultText(result.Message), nil
		}
		if err := w.Save(); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s: %s %s", result.Message, result.Source.ID(), result.Source.Name())), nil
	}
}
