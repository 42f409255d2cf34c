package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksync/internal/adapters/docfile"
	"linksync/internal/adapters/memdoc"
	"linksync/internal/adapters/workspace"
	"linksync/internal/config"
	"linksync/internal/domain"
)

func testOpener(t *testing.T) Opener {
	t.Helper()
	doc := memdoc.New("Test")
	p, err := doc.AddPageWithID("1:1", "Components")
	require.NoError(t, err)
	doc.MustAdd(p, memdoc.NodeSpec{
		ID:     "1:2",
		Type:   domain.NodeTypeComponent,
		Name:   "Button",
		Key:    "button-key",
		Bounds: domain.Rect{Width: 100, Height: 40},
	})

	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, docfile.NewRepository(path).Save(doc))

	cfg := &config.Config{
		DocumentPath:    path,
		MetadataBackend: config.BackendDocument,
		Sync:            domain.DefaultSyncConfig(),
		LinkMargin:      config.DefaultLinkMargin,
	}
	return func() (*workspace.Workspace, error) { return workspace.Open(cfg) }
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, result.IsError
}

func TestTools_LinkSyncNavigate(t *testing.T) {
	open := testOpener(t)

	out, isErr := call(t, createLinksHandler(open), map[string]any{"node_ids": "1:2"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Created 1 linked element(s)")

	out, _ = call(t, treeHandler(open), nil)
	assert.Contains(t, out, `"Linked: Button" -> 1:2`)

	// create_links selected the copy, so the remaining calls can rely on the selection
	out, _ = call(t, hasLinkHandler(open), nil)
	assert.Equal(t, "true", out)

	out, isErr = call(t, syncHandler(open), map[string]any{"groups": "name"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "Sync complete: 1 updated, 0 failed")

	out, _ = call(t, goToSourceHandler(open), nil)
	assert.Contains(t, out, "Moved to Source Component: 1:2 Button")

	out, _ = call(t, hasLinkHandler(open), nil)
	assert.Equal(t, "false", out, "the source is now selected")
}

func TestTools_Inspect(t *testing.T) {
	open := testOpener(t)

	out, isErr := call(t, inspectHandler(open), map[string]any{"node_id": "1:2", "query": "$.type"})
	require.False(t, isErr, out)
	assert.Contains(t, out, "COMPONENT")

	_, isErr = call(t, inspectHandler(open), map[string]any{"node_id": "9:9"})
	assert.True(t, isErr)
}

func TestTools_Errors(t *testing.T) {
	open := testOpener(t)

	out, isErr := call(t, syncHandler(open), map[string]any{"groups": "colours"})
	assert.True(t, isErr)
	assert.True(t, strings.Contains(out, "colours"), out)

	_, isErr = call(t, selectHandler(open), map[string]any{"node_ids": "1:2, 9:9"})
	assert.True(t, isErr)
}

func TestIDList(t *testing.T) {
	assert.Nil(t, idList(""))
	assert.Equal(t, []string{"1:2", "1:3"}, idList(" 1:2, ,1:3 "))
}
