package sqlite

import (
	"database/sql"

	"linksync/internal/ports"
)

// metadataTx implements ports.MetadataBatch
type metadataTx struct {
	tx         *sql.Tx
	documentID string
}

// Ensure metadataTx implements MetadataBatch
var _ ports.MetadataBatch = (*metadataTx)(nil)

// Set stages a write
func (t *metadataTx) Set(nodeID, key, value string) error {
	return setValue(t.tx, t.documentID, nodeID, key, value)
}

// Commit commits the transaction
func (t *metadataTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *metadataTx) Rollback() error {
	return t.tx.Rollback()
}
