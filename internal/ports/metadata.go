package ports

// MetadataStore is the per-node side channel for plugin data. Values are
// addressed by node id and key, are not part of the node's visible
// properties and must survive save and reload of the document.
type MetadataStore interface {
	// Get returns "" when the key is not set
	Get(nodeID, key string) (string, error)
	Set(nodeID, key, value string) error
	// Keys lists the keys set on a node
	Keys(nodeID string) ([]string, error)
	// Delete removes every key set on a node
	Delete(nodeID string) error
}

// MetadataBatch groups writes that must land together
type MetadataBatch interface {
	Set(nodeID, key, value string) error
	Commit() error
	Rollback() error
}

// BatchingMetadataStore is implemented by stores that support atomic batches
type BatchingMetadataStore interface {
	MetadataStore
	Begin() (MetadataBatch, error)
}
