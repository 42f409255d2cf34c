package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linksync/internal/adapters/docfile"
	"linksync/internal/adapters/memdoc"
	"linksync/internal/config"
	"linksync/internal/domain"
)

func writeDoc(t *testing.T, dir string) string {
	t.Helper()
	doc := memdoc.New("Test")
	page := doc.AddPage("Page 1")
	doc.MustAdd(page, memdoc.NodeSpec{Type: domain.NodeTypeComponent, Name: "Card", Key: "card"})

	path := filepath.Join(dir, "design.yaml")
	repo := docfile.NewRepository(path)
	require.NoError(t, repo.Save(doc))
	return path
}

func testConfig(docPath, backend, dbPath string) *config.Config {
	return &config.Config{
		DocumentPath:    docPath,
		MetadataBackend: backend,
		MetadataPath:    dbPath,
		Sync:            domain.DefaultSyncConfig(),
		LinkMargin:      config.DefaultLinkMargin,
	}
}

func TestOpen_DocumentBackend(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir)

	w, err := Open(testConfig(path, config.BackendDocument, ""))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Meta.Set("1:2", domain.KeySourceID, "1:9"))
	require.NoError(t, w.Save())

	require.NoError(t, w.Reload())
	v, err := w.Meta.Get("1:2", domain.KeySourceID)
	require.NoError(t, err)
	assert.Equal(t, "1:9", v, "plugin data is stored in the document file")
}

func TestOpen_SQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir)
	dbPath := filepath.Join(dir, "meta.db")

	w, err := Open(testConfig(path, config.BackendSQLite, dbPath))
	require.NoError(t, err)

	require.NoError(t, w.Meta.Set("1:2", domain.KeySourceID, "1:9"))
	assert.Empty(t, w.Doc.PluginData().NodeIDs(), "records go to sqlite, not the document")
	require.NoError(t, w.Close())

	again, err := Open(testConfig(path, config.BackendSQLite, dbPath))
	require.NoError(t, err)
	defer again.Close()

	v, err := again.Meta.Get("1:2", domain.KeySourceID)
	require.NoError(t, err)
	assert.Equal(t, "1:9", v)
}

func TestOpen_MissingDocument(t *testing.T) {
	_, err := Open(testConfig(filepath.Join(t.TempDir(), "none.yaml"), config.BackendDocument, ""))
	assert.Error(t, err)
}

func TestSelectionOrIDs(t *testing.T) {
	path := writeDoc(t, t.TempDir())
	w, err := Open(testConfig(path, config.BackendDocument, ""))
	require.NoError(t, err)
	defer w.Close()

	nodes, err := w.SelectionOrIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)

	require.NoError(t, w.Doc.SelectIDs("1:2"))
	nodes, err = w.SelectionOrIDs(nil)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	_, err = w.SelectionOrIDs([]string{"9:9"})
	assert.Error(t, err)
}
