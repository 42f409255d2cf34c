package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"linksync/internal/adapters/docfile"
	"linksync/internal/adapters/memdoc"
	"linksync/internal/application"
	"linksync/internal/application/commands"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

func TestCreateLinksCommand_Component(t *testing.T) {
	f := newFixture()

	cmd := commands.NewCreateLinksCommand(f.doc, f.meta, nodes(f.button))
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created root, got %d", len(result.Created))
	}
	if result.Message != "Created 1 linked element(s)" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if result.Records != 3 {
		t.Errorf("expected 3 identity records, got %d", result.Records)
	}

	root := result.Created[0]
	if root.Type() != domain.NodeTypeFrame {
		t.Errorf("expected detached frame, got %s", root.Type())
	}
	if root.Name() != "Linked: Button" {
		t.Errorf("expected name %q, got %q", "Linked: Button", root.Name())
	}
	if b := root.Bounds(); b.X != 270 || b.Y != 40 {
		t.Errorf("expected position (270, 40), got (%v, %v)", b.X, b.Y)
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}

	tests := []struct {
		name    string
		derived ports.Node
		want    domain.IdentityRecord
	}{
		{"root", root, domain.IdentityRecord{SourceID: f.button.ID(), IndexPath: "root", RootKey: "button-key"}},
		{"label", children[0], domain.IdentityRecord{SourceID: f.label.ID(), IndexPath: "root-0", RootKey: "button-key"}},
		{"icon", children[1], domain.IdentityRecord{SourceID: f.icon.ID(), IndexPath: "root-1", RootKey: "button-key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readRecord(f.meta, tt.derived.ID())
			if got != tt.want {
				t.Errorf("expected record %+v, got %+v", tt.want, got)
			}
		})
	}

	selection := f.doc.Selection()
	if len(selection) != 1 || selection[0].ID() != root.ID() {
		t.Errorf("expected the derived root to be selected, got %v", selection)
	}
}

func TestCreateLinksCommand_PathsResolveToSources(t *testing.T) {
	f := newFixture()

	result, err := commands.NewCreateLinksCommand(f.doc, f.meta, nodes(f.button)).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	ports.Walk(result.Created[0], func(n ports.Node) bool {
		rec := readRecord(f.meta, n.ID())
		source, ok := application.ResolvePath(f.button, rec.IndexPath)
		if !ok {
			t.Errorf("path %s of %s does not resolve", rec.IndexPath, n.ID())
			return true
		}
		if source.ID() != rec.SourceID {
			t.Errorf("path %s resolves to %s, record says %s", rec.IndexPath, source.ID(), rec.SourceID)
		}
		return true
	})
}

func TestCreateLinksCommand_VariantSet(t *testing.T) {
	f := newFixture()
	set := f.doc.MustAdd(f.page, memdoc.NodeSpec{Type: domain.NodeTypeComponentSet, Name: "Size"})
	small := f.doc.MustAdd(set, memdoc.NodeSpec{Type: domain.NodeTypeComponent, Name: "Size=Small", Key: "small-key"})
	f.doc.MustAdd(set, memdoc.NodeSpec{Type: domain.NodeTypeComponent, Name: "Size=Large", Key: "large-key"})

	result, err := commands.NewCreateLinksCommand(f.doc, f.meta, nodes(set)).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created root, got %d", len(result.Created))
	}

	root := result.Created[0]
	if root.Name() != "Linked: Size=Small" {
		t.Errorf("expected name from the default variant, got %q", root.Name())
	}
	rec := readRecord(f.meta, root.ID())
	if rec.SourceID != small.ID() {
		t.Errorf("expected source %s, got %s", small.ID(), rec.SourceID)
	}
	if rec.RootKey != "" {
		t.Errorf("variant set links must not carry a root key, got %q", rec.RootKey)
	}
}

func TestCreateLinksCommand_InstanceKeepsOverrides(t *testing.T) {
	f := newFixture()
	inst, err := f.doc.CreateInstance(f.button)
	if err != nil {
		t.Fatal(err)
	}
	instLabel := inst.Children()[0]
	if err := instLabel.Set(domain.PropFontSize, domain.Concrete(20.0)); err != nil {
		t.Fatal(err)
	}

	result, err := commands.NewCreateLinksCommand(f.doc, f.meta, []ports.Node{inst}).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created root, got %d", len(result.Created))
	}

	root := result.Created[0]
	if root.Type() != domain.NodeTypeFrame {
		t.Errorf("expected detached frame, got %s", root.Type())
	}
	derivedLabel := root.Children()[0]
	if got := derivedLabel.Get(domain.PropFontSize).Raw(); got != 20.0 {
		t.Errorf("expected override 20 to survive, got %v", got)
	}

	rec := readRecord(f.meta, derivedLabel.ID())
	if rec.SourceID != instLabel.ID() {
		t.Errorf("expected source %s, got %s", instLabel.ID(), rec.SourceID)
	}
	if rec.RootKey != "" {
		t.Errorf("instance links must not carry a root key, got %q", rec.RootKey)
	}
}

func TestCreateLinksCommand_RelinkAfterReload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := commands.NewCreateLinksCommand(f.doc, f.meta, nodes(f.button)).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	removedID := first.Created[0].ID()
	removed, _ := f.doc.Node(removedID)
	if err := f.doc.Remove(removed); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := docfile.Encode(&buf, f.doc); err != nil {
		t.Fatal(err)
	}
	doc, err := docfile.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	meta := doc.PluginData()

	button, _ := doc.Node(f.button.ID())
	inst, err := doc.CreateInstance(button)
	if err != nil {
		t.Fatal(err)
	}
	result, err := commands.NewCreateLinksCommand(doc, meta, []ports.Node{inst}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("expected 1 created root, got %d", len(result.Created))
	}

	ports.Walk(result.Created[0], func(n ports.Node) bool {
		if n.ID() == removedID {
			t.Errorf("derived node reuses id %s of the removed copy", n.ID())
		}
		if rec := readRecord(meta, n.ID()); rec.RootKey != "" {
			t.Errorf("instance link %s carries root key %q", n.ID(), rec.RootKey)
		}
		return true
	})
}

func TestCreateLinksCommand_SkipsAndFailures(t *testing.T) {
	f := newFixture()
	frame := f.doc.MustAdd(f.page, memdoc.NodeSpec{Type: domain.NodeTypeFrame, Name: "Loose"})
	empty := f.doc.MustAdd(f.page, memdoc.NodeSpec{Type: domain.NodeTypeComponentSet, Name: "Empty"})

	result, err := commands.NewCreateLinksCommand(f.doc, f.meta, nodes(frame, empty, f.button)).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped node, got %d", result.Skipped)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}
	var linkErr *application.LinkError
	if !errors.As(result.Failures[0], &linkErr) || linkErr.NodeID != empty.ID() {
		t.Errorf("expected LinkError for %s, got %v", empty.ID(), result.Failures[0])
	}
	if !errors.Is(result.Failures[0], application.ErrIneligibleNode) {
		t.Errorf("expected ErrIneligibleNode, got %v", result.Failures[0])
	}
	if len(result.Created) != 1 {
		t.Errorf("expected the button to still be linked, got %d roots", len(result.Created))
	}
	if f.meta.Snapshot(frame.ID())[domain.KeySourceID] != "" {
		t.Error("ineligible nodes must not be stamped")
	}
}

func TestCreateLinksCommand_Messages(t *testing.T) {
	f := newFixture()
	frame := f.doc.MustAdd(f.page, memdoc.NodeSpec{Type: domain.NodeTypeFrame})

	tests := []struct {
		name      string
		selection []ports.Node
		message   string
	}{
		{"empty selection", nil, "Select a Component, Instance, or Component Set"},
		{"only ineligible", nodes(frame), "Created 0 linked element(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := commands.NewCreateLinksCommand(f.doc, f.meta, tt.selection).Execute(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if result.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, result.Message)
			}
			if len(result.Created) != 0 {
				t.Errorf("expected nothing created, got %d", len(result.Created))
			}
		})
	}
}

func TestRootKeyFor(t *testing.T) {
	f := newFixture()
	set := f.doc.MustAdd(f.page, memdoc.NodeSpec{Type: domain.NodeTypeComponentSet})
	variant := f.doc.MustAdd(set, memdoc.NodeSpec{Type: domain.NodeTypeComponent, Key: "variant-key"})

	if got := commands.RootKeyFor(f.button, f.button); got != "button-key" {
		t.Errorf("component: expected button-key, got %q", got)
	}
	if got := commands.RootKeyFor(set, variant); got != "" {
		t.Errorf("variant set: expected no key, got %q", got)
	}
}
