package memdoc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksync/internal/application"
	"linksync/internal/domain"
)

func newCardDoc(t *testing.T) (*Document, *Node, *Node) {
	t.Helper()
	doc := New("test")
	page := doc.AddPage("Page 1")
	card, err := doc.Add(page, NodeSpec{Type: domain.NodeTypeComponent, Name: "Card", Key: "card-key"})
	require.NoError(t, err)
	_, err = doc.Add(card, NodeSpec{Type: domain.NodeTypeText, Name: "Title"})
	require.NoError(t, err)
	return doc, page, card
}

func TestDocument_Add(t *testing.T) {
	doc, page, card := newCardDoc(t)

	assert.Equal(t, "1:1", page.ID())
	assert.Equal(t, "1:2", card.ID())

	title := card.ChildAt(0)
	_, err := doc.Add(title, NodeSpec{Type: domain.NodeTypeFrame})
	assert.Error(t, err, "text nodes have no children")

	_, err = doc.Add(page, NodeSpec{Type: domain.NodeTypePage})
	assert.Error(t, err)

	_, err = doc.Add(page, NodeSpec{ID: card.ID(), Type: domain.NodeTypeFrame})
	assert.Error(t, err, "duplicate id")

	fixed, err := doc.Add(page, NodeSpec{ID: "1:40", Type: domain.NodeTypeFrame})
	require.NoError(t, err)
	next, err := doc.Add(page, NodeSpec{Type: domain.NodeTypeFrame})
	require.NoError(t, err)
	assert.Equal(t, "1:40", fixed.ID())
	assert.Equal(t, "1:41", next.ID(), "generated ids skip past loaded ones")
}

func TestNode_GetSet(t *testing.T) {
	doc, page, _ := newCardDoc(t)
	rect := doc.MustAdd(page, NodeSpec{Type: domain.NodeTypeRectangle, ReadOnly: []domain.Property{domain.PropVisible}})

	assert.Equal(t, 1.0, rect.Get(domain.PropOpacity).Raw(), "unset properties read their default")
	assert.True(t, rect.Get(domain.PropFontSize).IsUnsupported())

	require.NoError(t, rect.Set(domain.PropOpacity, domain.Concrete(0.25)))
	assert.Equal(t, 0.25, rect.Get(domain.PropOpacity).Raw())

	err := rect.Set(domain.PropFontSize, domain.Concrete(12.0))
	assert.ErrorIs(t, err, application.ErrPropertyUnsupported)

	err = rect.Set(domain.PropVisible, domain.Concrete(false))
	assert.ErrorIs(t, err, application.ErrPropertyReadOnly)

	err = rect.Set(domain.PropOpacity, domain.Concrete("half"))
	assert.ErrorIs(t, err, application.ErrTypeMismatch)

	err = rect.Set(domain.PropOpacity, domain.Indeterminate)
	assert.ErrorIs(t, err, application.ErrTypeMismatch)

	rect.SetMixed(domain.PropStrokes)
	assert.True(t, rect.Get(domain.PropStrokes).IsIndeterminate())
	assert.Equal(t, []domain.Property{domain.PropOpacity, domain.PropStrokes}, rect.Props())
	assert.Equal(t, []domain.Property{domain.PropVisible}, rect.ReadOnly())
}

func TestNode_SetCopiesContainers(t *testing.T) {
	doc, page, _ := newCardDoc(t)
	rect := doc.MustAdd(page, NodeSpec{Type: domain.NodeTypeRectangle})

	fills := []any{map[string]any{"color": "#fff"}}
	require.NoError(t, rect.Set(domain.PropFills, domain.Concrete(fills)))
	fills[0].(map[string]any)["color"] = "#000"

	stored := rect.Get(domain.PropFills).Raw().([]any)
	assert.Equal(t, "#fff", stored[0].(map[string]any)["color"])
}

func TestDocument_Instancing(t *testing.T) {
	doc, page, card := newCardDoc(t)
	card.ChildAt(0).Set(domain.PropFontSize, domain.Concrete(18.0))

	inst, err := doc.CreateInstance(card)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeTypeInstance, inst.Type())
	assert.Empty(t, inst.Key())
	assert.Len(t, page.Children(), 2)

	own := inst.(*Node)
	assert.Same(t, card, own.MainComponent())
	assert.Equal(t, 18.0, own.ChildAt(0).Get(domain.PropFontSize).Raw())
	assert.NotEqual(t, card.ChildAt(0).ID(), own.ChildAt(0).ID())

	dup, err := doc.Duplicate(card)
	require.NoError(t, err)
	assert.Equal(t, 1, dup.(*Node).IndexInParent(), "duplicates land right after the original")

	_, err = doc.Detach(card)
	assert.ErrorIs(t, err, application.ErrIneligibleNode)

	detached, err := doc.Detach(inst)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeTypeFrame, detached.Type())
	assert.Nil(t, detached.(*Node).MainComponent())
}

func TestDocument_DefaultVariant(t *testing.T) {
	doc := New("test")
	page := doc.AddPage("Page 1")
	set := doc.MustAdd(page, NodeSpec{Type: domain.NodeTypeComponentSet})
	doc.MustAdd(set, NodeSpec{Type: domain.NodeTypeFrame, Name: "Not a variant"})
	first := doc.MustAdd(set, NodeSpec{Type: domain.NodeTypeComponent, Name: "State=Default"})
	doc.MustAdd(set, NodeSpec{Type: domain.NodeTypeComponent, Name: "State=Hover"})

	variant, err := doc.DefaultVariant(set)
	require.NoError(t, err)
	assert.Same(t, first, variant)

	empty := doc.MustAdd(page, NodeSpec{Type: domain.NodeTypeComponentSet})
	_, err = doc.DefaultVariant(empty)
	assert.ErrorIs(t, err, application.ErrIneligibleNode)
}

func TestDocument_ImportByKey(t *testing.T) {
	ctx := context.Background()
	doc, _, card := newCardDoc(t)

	got, err := doc.ImportByKey(ctx, "card-key")
	require.NoError(t, err)
	assert.Same(t, card, got, "local definitions win")

	lib, err := doc.AddLibraryComponent(NodeSpec{Name: "Chip", Key: "chip-key"})
	require.NoError(t, err)
	assert.Contains(t, lib.ID(), "lib:")
	_, indexed := doc.NodeByID(lib.ID())
	assert.False(t, indexed, "library definitions are not part of the document")

	first, err := doc.ImportByKey(ctx, "chip-key")
	require.NoError(t, err)
	second, err := doc.ImportByKey(ctx, "chip-key")
	require.NoError(t, err)
	assert.Same(t, first, second, "imports are cached per key")
	assert.Equal(t, "Chip", first.Name())

	doc.RevokeKey("chip-key")
	_, err = doc.ImportByKey(ctx, "chip-key")
	assert.ErrorIs(t, err, application.ErrImportFailed)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = doc.ImportByKey(cancelled, "card-key")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDocument_RemoveKeepsPluginData(t *testing.T) {
	doc, _, card := newCardDoc(t)
	require.NoError(t, doc.PluginData().Set(card.ID(), "sourceId", "1:99"))
	require.NoError(t, doc.SelectIDs(card.ID()))

	require.NoError(t, doc.Remove(card))

	_, ok := doc.NodeByID(card.ID())
	assert.False(t, ok)
	_, ok = doc.NodeByID(card.ChildAt(0).ID())
	assert.False(t, ok, "descendants are removed too")
	assert.Empty(t, doc.Selection())

	v, err := doc.PluginData().Get(card.ID(), "sourceId")
	require.NoError(t, err)
	assert.Equal(t, "1:99", v)
}

func TestDocument_GeneratedIDsSkipPluginData(t *testing.T) {
	// A reloaded document keeps plugin data of a node removed before the save
	doc := New("reloaded")
	page, err := doc.AddPageWithID("1:1", "Page")
	require.NoError(t, err)
	require.NoError(t, doc.PluginData().Set("1:2", "rootKey", "button-key"))

	next := doc.MustAdd(page, NodeSpec{Type: domain.NodeTypeFrame, Name: "Next"})
	assert.Equal(t, "1:3", next.ID())
	assert.False(t, doc.PluginData().Has(next.ID()))
}

func TestDocument_Fonts(t *testing.T) {
	ctx := context.Background()
	doc := New("test")

	assert.NoError(t, doc.LoadFont(ctx, domain.FontName{Family: "Any", Style: "Thing"}))

	doc.SetFonts(domain.FontName{Family: "Inter", Style: "Regular"})
	assert.NoError(t, doc.LoadFont(ctx, domain.FontName{Family: "Inter", Style: "Regular"}))
	assert.ErrorIs(t, doc.LoadFont(ctx, domain.FontName{Family: "Inter", Style: "Bold"}), application.ErrFontUnavailable)
}

func TestDocument_Sections(t *testing.T) {
	doc, page, card := newCardDoc(t)
	other := doc.AddPage("Page 2")

	assert.Equal(t, page.ID(), doc.CurrentSection().ID(), "the first page is current")
	assert.Equal(t, page.ID(), doc.Section(card.ChildAt(0)).ID())

	require.NoError(t, doc.SetCurrentSection(other))
	assert.Equal(t, other.ID(), doc.CurrentSection().ID())

	assert.Error(t, doc.SetCurrentSection(card))
}

func TestDocument_Selection(t *testing.T) {
	doc, page, card := newCardDoc(t)

	require.NoError(t, doc.SelectIDs(card.ID(), page.ID()))
	assert.Len(t, doc.Selection(), 2)

	assert.ErrorIs(t, doc.SelectIDs("9:9"), application.ErrNotFound)

	doc.ScrollIntoView(card)
	assert.Equal(t, []string{card.ID()}, doc.Viewed())
}
