package docfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"linksync/internal/adapters/memdoc"
	"linksync/internal/application"
)

// Repository loads and saves a document file
type Repository struct {
	path string
}

// NewRepository creates a new document repository
func NewRepository(path string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Repository{path: path}
}

// Path returns the resolved file path
func (r *Repository) Path() string {
	return r.path
}

// Load reads the document file
func (r *Repository) Load() (*memdoc.Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: document %s", application.ErrNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return doc, nil
}

// Save writes the document through a temporary file in the same directory.
// Documents without an id get one on their first save.
func (r *Repository) Save(doc *memdoc.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".linksync-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}
