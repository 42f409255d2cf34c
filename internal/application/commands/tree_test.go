package commands_test

import (
	"context"
	"testing"

	"linksync/internal/application/commands"
	"linksync/internal/domain"
)

func TestBuildTreeCommand(t *testing.T) {
	f := newFixture()
	f.doc.AddPage("Empty")
	root := linkButton(t, f)

	trees, err := commands.NewBuildTreeCommand(f.doc, f.meta).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(trees))
	}

	page := trees[0]
	if page.Type != domain.NodeTypePage || !page.IsExpanded {
		t.Errorf("expected an expanded page, got %+v", page)
	}
	if trees[1].IsExpanded {
		t.Error("empty pages must not be expanded")
	}
	if got := page.CountLinked(); got != 3 {
		t.Errorf("expected 3 linked nodes, got %d", got)
	}

	derived := page.Find(root.ID())
	if derived == nil {
		t.Fatalf("derived root %s not in tree", root.ID())
	}
	if !derived.Linked || derived.SourceID != f.button.ID() {
		t.Errorf("expected link to %s, got %+v", f.button.ID(), derived)
	}
	if derived.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", derived.Depth())
	}
	if source := page.Find(f.button.ID()); source == nil || source.Linked {
		t.Errorf("expected the unlinked source in the tree, got %+v", source)
	}

	// Only the page is expanded, so its direct children are visible
	if got := len(page.Flatten()); got != 3 {
		t.Errorf("expected page plus 2 children visible, got %d", got)
	}
}
