package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"linksync/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.MetadataStore using SQLite. One database can hold
// the plugin data of many documents; every store is scoped to one document id.
type Store struct {
	db         *sql.DB
	dbPath     string
	documentID string
}

// Ensure Store implements BatchingMetadataStore
var _ ports.BatchingMetadataStore = (*Store)(nil)

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join("linksync", "metadata.db"))
}

// Open opens or creates the database at dbPath, scoped to documentID
func Open(dbPath, documentID string) (*Store, error) {
	if documentID == "" {
		return nil, errors.New("document id is required")
	}

	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create metadata directory: %w", err)
	}

	// modernc applies _pragma parameters to every pooled connection
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS plugin_data (
			document_id TEXT NOT NULL,
			node_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (document_id, node_id, key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Store{db: db, dbPath: dbPath, documentID: documentID}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file
func (s *Store) Path() string {
	return s.dbPath
}

// DocumentID returns the document this store is scoped to
func (s *Store) DocumentID() string {
	return s.documentID
}

// Get returns "" for unset keys
func (s *Store) Get(nodeID, key string) (string, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM plugin_data
		WHERE document_id = ? AND node_id = ? AND key = ?
	`, s.documentID, nodeID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s of %s: %w", key, nodeID, err)
	}
	return value, nil
}

// Set stores a value; an empty value removes the key
func (s *Store) Set(nodeID, key, value string) error {
	return setValue(s.db, s.documentID, nodeID, key, value)
}

// Keys lists a node's keys in order
func (s *Store) Keys(nodeID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT key FROM plugin_data
		WHERE document_id = ? AND node_id = ?
		ORDER BY key
	`, s.documentID, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %s: %w", nodeID, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Delete drops all keys of a node
func (s *Store) Delete(nodeID string) error {
	_, err := s.db.Exec(`DELETE FROM plugin_data WHERE document_id = ? AND node_id = ?`, s.documentID, nodeID)
	if err != nil {
		return fmt.Errorf("failed to delete plugin data of %s: %w", nodeID, err)
	}
	return nil
}

// NodeIDs lists every node of the document that has plugin data
func (s *Store) NodeIDs() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT node_id FROM plugin_data
		WHERE document_id = ?
		ORDER BY node_id
	`, s.documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Begin starts a transaction; writes become visible on Commit
func (s *Store) Begin() (ports.MetadataBatch, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &metadataTx{tx: tx, documentID: s.documentID}, nil
}

// execer is satisfied by *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func setValue(db execer, documentID, nodeID, key, value string) error {
	var err error
	if value == "" {
		_, err = db.Exec(`
			DELETE FROM plugin_data
			WHERE document_id = ? AND node_id = ? AND key = ?
		`, documentID, nodeID, key)
	} else {
		_, err = db.Exec(`
			INSERT OR REPLACE INTO plugin_data (document_id, node_id, key, value)
			VALUES (?, ?, ?, ?)
		`, documentID, nodeID, key, value)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s of %s: %w", key, nodeID, err)
	}
	return nil
}
