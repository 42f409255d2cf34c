package application

import (
	"fmt"

	"linksync/internal/domain"
	"linksync/internal/ports"
)

// IdentityStore reads and writes identity records through the per-node
// metadata side channel
type IdentityStore struct {
	meta ports.MetadataStore
}

// NewIdentityStore creates a new IdentityStore
func NewIdentityStore(meta ports.MetadataStore) *IdentityStore {
	return &IdentityStore{meta: meta}
}

// Read returns the identity record of a node. Nodes that were never linked
// return a zero record.
func (s *IdentityStore) Read(nodeID string) (domain.IdentityRecord, error) {
	var rec domain.IdentityRecord

	sourceID, err := s.meta.Get(nodeID, domain.KeySourceID)
	if err != nil {
		return rec, fmt.Errorf("failed to read %s of %s: %w", domain.KeySourceID, nodeID, err)
	}
	indexPath, err := s.meta.Get(nodeID, domain.KeyIndexPath)
	if err != nil {
		return rec, fmt.Errorf("failed to read %s of %s: %w", domain.KeyIndexPath, nodeID, err)
	}
	rootKey, err := s.meta.Get(nodeID, domain.KeyRootKey)
	if err != nil {
		return rec, fmt.Errorf("failed to read %s of %s: %w", domain.KeyRootKey, nodeID, err)
	}

	rec.SourceID = sourceID
	rec.IndexPath = domain.IndexPath(indexPath)
	rec.RootKey = rootKey
	return rec, nil
}

// HasLink reports whether a node carries a source id. Read errors count as
// not linked.
func (s *IdentityStore) HasLink(nodeID string) bool {
	sourceID, err := s.meta.Get(nodeID, domain.KeySourceID)
	return err == nil && sourceID != ""
}

// Write stores the identity record of a derived node. An empty root key
// removes any stored one.
func (s *IdentityStore) Write(nodeID string, rec domain.IdentityRecord) error {
	return writeRecord(s.meta, nodeID, rec)
}

// WriteAll stores several records, atomically when the backing store supports batches
func (s *IdentityStore) WriteAll(records map[string]domain.IdentityRecord, order []string) error {
	batching, ok := s.meta.(ports.BatchingMetadataStore)
	if !ok {
		for _, id := range order {
			if err := writeRecord(s.meta, id, records[id]); err != nil {
				return err
			}
		}
		return nil
	}

	batch, err := batching.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin metadata batch: %w", err)
	}
	for _, id := range order {
		if err := writeRecord(batch, id, records[id]); err != nil {
			batch.Rollback()
			return err
		}
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf("failed to commit metadata batch: %w", err)
	}
	return nil
}

type metadataSetter interface {
	Set(nodeID, key, value string) error
}

func writeRecord(meta metadataSetter, nodeID string, rec domain.IdentityRecord) error {
	if err := meta.Set(nodeID, domain.KeySourceID, rec.SourceID); err != nil {
		return fmt.Errorf("failed to write %s of %s: %w", domain.KeySourceID, nodeID, err)
	}
	if err := meta.Set(nodeID, domain.KeyIndexPath, string(rec.IndexPath)); err != nil {
		return fmt.Errorf("failed to write %s of %s: %w", domain.KeyIndexPath, nodeID, err)
	}
	// An empty root key clears whatever an earlier link left behind
	if err := meta.Set(nodeID, domain.KeyRootKey, rec.RootKey); err != nil {
		return fmt.Errorf("failed to write %s of %s: %w", domain.KeyRootKey, nodeID, err)
	}
	return nil
}
