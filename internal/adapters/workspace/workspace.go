package workspace

import (
	"fmt"

	"github.com/rs/zerolog"

	"linksync/internal/adapters/docfile"
	"linksync/internal/adapters/memdoc"
	"linksync/internal/adapters/sqlite"
	"linksync/internal/config"
	"linksync/internal/domain"
	"linksync/internal/logging"
	"linksync/internal/ports"
)

// Workspace is an opened document together with the metadata store that
// holds its identity records
type Workspace struct {
	Repo       *docfile.Repository
	Doc        *memdoc.Document
	Meta       ports.MetadataStore
	Sync       domain.SyncConfig
	LinkMargin float64

	cfg    *config.Config
	store  *sqlite.Store
	logger zerolog.Logger
}

// Open loads the configured document and its metadata backend
func Open(cfg *config.Config) (*Workspace, error) {
	w := &Workspace{
		Repo:       docfile.NewRepository(cfg.DocumentPath),
		Sync:       cfg.Sync.Clone(),
		LinkMargin: cfg.LinkMargin,
		cfg:        cfg,
		logger:     logging.Get("workspace"),
	}
	if err := w.load(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workspace) load() error {
	doc, err := w.Repo.Load()
	if err != nil {
		return err
	}
	w.Doc = doc

	if w.cfg.MetadataBackend != config.BackendSQLite {
		w.Meta = doc.PluginData()
		return nil
	}

	// The sqlite backend is keyed by document id, so the document needs one
	if doc.ID == "" {
		if err := w.Repo.Save(doc); err != nil {
			return fmt.Errorf("failed to assign document id: %w", err)
		}
	}
	dbPath := w.cfg.MetadataPath
	if dbPath == "" {
		if dbPath, err = sqlite.DefaultPath(); err != nil {
			return fmt.Errorf("failed to resolve metadata path: %w", err)
		}
	}
	if w.store == nil || w.store.DocumentID() != doc.ID || w.store.Path() != dbPath {
		if w.store != nil {
			w.store.Close()
		}
		store, err := sqlite.Open(dbPath, doc.ID)
		if err != nil {
			return err
		}
		w.store = store
	}
	w.Meta = w.store

	w.logger.Debug().Str("db", dbPath).Str("document", doc.ID).Msg("Using sqlite metadata")
	return nil
}

// Reload reads the document file again, e.g. after it was edited externally
func (w *Workspace) Reload() error {
	return w.load()
}

// Save writes the document file. With the document backend this also
// persists identity records.
func (w *Workspace) Save() error {
	if err := w.Repo.Save(w.Doc); err != nil {
		return err
	}
	w.logger.Debug().Str("path", w.Repo.Path()).Msg("Document saved")
	return nil
}

// Close releases the metadata store
func (w *Workspace) Close() error {
	if w.store != nil {
		return w.store.Close()
	}
	return nil
}

// Backend returns the configured metadata backend name
func (w *Workspace) Backend() string {
	return w.cfg.MetadataBackend
}

// SelectionOrIDs returns the nodes named by ids, or the document selection
// when ids is empty
func (w *Workspace) SelectionOrIDs(ids []string) ([]ports.Node, error) {
	if len(ids) == 0 {
		return w.Doc.Selection(), nil
	}
	nodes := make([]ports.Node, 0, len(ids))
	for _, id := range ids {
		n, ok := w.Doc.NodeByID(id)
		if !ok {
			return nil, fmt.Errorf("node %s not found", id)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
