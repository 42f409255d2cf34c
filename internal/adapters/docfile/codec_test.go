package docfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksync/internal/adapters/memdoc"
	"linksync/internal/application"
	"linksync/internal/domain"
)

func loadFixture(t *testing.T) *memdoc.Document {
	t.Helper()
	doc, err := NewRepository(filepath.Join("testdata", "button.yaml")).Load()
	require.NoError(t, err)
	return doc
}

func TestDecode(t *testing.T) {
	doc := loadFixture(t)

	assert.Equal(t, "7f1c2d7e-3d55-4a57-9d0e-2f8f6f0c9a11", doc.ID)
	assert.Equal(t, "Buttons", doc.Name)
	require.Len(t, doc.Pages(), 2)
	assert.Equal(t, "1:1", doc.CurrentSection().ID())

	button, ok := doc.Node("1:2")
	require.True(t, ok)
	assert.Equal(t, domain.NodeTypeComponent, button.Type())
	assert.Equal(t, "button-key", button.Key())
	assert.Equal(t, domain.Rect{X: 100, Y: 40, Width: 120, Height: 32}, button.Bounds())
	assert.Equal(t, 6.5, button.Get(domain.PropCornerRadius).Raw())
	assert.Equal(t, []domain.Property{domain.PropCornerSmoothing}, button.ReadOnly())

	label, ok := doc.Node("1:3")
	require.True(t, ok)
	font, ok := label.Get(domain.PropFontName).Font()
	require.True(t, ok)
	assert.Equal(t, domain.FontName{Family: "Inter", Style: "Bold"}, font)
	assert.True(t, label.Get(domain.PropFontSize).IsIndeterminate())

	inst, ok := doc.Node("1:5")
	require.True(t, ok)
	assert.Same(t, button, inst.MainComponent())

	selection := doc.Selection()
	require.Len(t, selection, 1)
	assert.Equal(t, "1:2", selection[0].ID())

	sourceID, err := doc.PluginData().Get("1:5", domain.KeySourceID)
	require.NoError(t, err)
	assert.Equal(t, "1:2", sourceID)

	assert.Error(t, doc.LoadFont(context.Background(), domain.FontName{Family: "Roboto", Style: "Regular"}))

	chip, err := doc.ImportByKey(context.Background(), "chip-key")
	require.NoError(t, err)
	assert.Equal(t, "Chip", chip.Name())
	assert.Len(t, chip.Children(), 1)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "pages: [unterminated"},
		{"unknown type", "pages:\n  - id: '1:1'\n    children:\n      - {id: '1:2', type: STICKY}\n"},
		{"bad font", "pages:\n  - id: '1:1'\n    children:\n      - {id: '1:2', type: TEXT, props: {fontName: Inter}}\n"},
		{"missing current page", "current: '9:9'\npages:\n  - id: '1:1'\n"},
		{"missing selection", "selection: ['9:9']\npages:\n  - id: '1:1'\n"},
		{"duplicate id", "pages:\n  - id: '1:1'\n    children:\n      - {id: '1:2', type: FRAME}\n      - {id: '1:2', type: FRAME}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := loadFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	again, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, again.ID)
	assert.Equal(t, len(doc.Pages()), len(again.Pages()))
	assert.Equal(t, doc.CurrentSection().ID(), again.CurrentSection().ID())
	assert.ElementsMatch(t, doc.LibraryKeys(), again.LibraryKeys())
	assert.Equal(t, doc.PluginData().Snapshot("1:5"), again.PluginData().Snapshot("1:5"))

	label, ok := again.Node("1:3")
	require.True(t, ok)
	assert.True(t, label.Get(domain.PropFontSize).IsIndeterminate())
	assert.Equal(t, "UPPER", label.Get(domain.PropTextCase).Raw())

	inst, ok := again.Node("1:5")
	require.True(t, ok)
	require.NotNil(t, inst.MainComponent())
	assert.Equal(t, "1:2", inst.MainComponent().ID())
}

func TestRepository_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "design.yaml")
	repo := NewRepository(path)

	_, err := repo.Load()
	assert.ErrorIs(t, err, application.ErrNotFound)

	doc := memdoc.New("Fresh")
	page := doc.AddPage("Page 1")
	doc.MustAdd(page, memdoc.NodeSpec{Type: domain.NodeTypeFrame, Name: "Frame"})

	require.NoError(t, repo.Save(doc))
	assert.NotEmpty(t, doc.ID, "first save assigns an id")
	id := doc.ID

	require.NoError(t, repo.Save(doc))
	assert.Equal(t, id, doc.ID, "ids are stable across saves")

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, id, loaded.ID)
	assert.Equal(t, "Fresh", loaded.Name)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}
