package memdoc

import (
	"sort"
	"sync"

	"linksync/internal/ports"
)

// PluginData is an in-memory ports.MetadataStore
type PluginData struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

// Ensure PluginData implements BatchingMetadataStore
var _ ports.BatchingMetadataStore = (*PluginData)(nil)

// NewPluginData creates an empty store
func NewPluginData() *PluginData {
	return &PluginData{entries: make(map[string]map[string]string)}
}

// Get returns "" for unset keys
func (p *PluginData) Get(nodeID, key string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries[nodeID][key], nil
}

// Set stores a value; an empty value removes the key
func (p *PluginData) Set(nodeID, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setLocked(nodeID, key, value)
	return nil
}

func (p *PluginData) setLocked(nodeID, key, value string) {
	if value == "" {
		if m, ok := p.entries[nodeID]; ok {
			delete(m, key)
			if len(m) == 0 {
				delete(p.entries, nodeID)
			}
		}
		return
	}
	m, ok := p.entries[nodeID]
	if !ok {
		m = make(map[string]string)
		p.entries[nodeID] = m
	}
	m[key] = value
}

// Keys lists a node's keys in order
func (p *PluginData) Keys(nodeID string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	keys := make([]string, 0, len(p.entries[nodeID]))
	for k := range p.entries[nodeID] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Has reports whether a node id carries any data
func (p *PluginData) Has(nodeID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries[nodeID]) > 0
}

// Delete drops all keys of a node
func (p *PluginData) Delete(nodeID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, nodeID)
	return nil
}

// NodeIDs lists every node with plugin data, in order
func (p *PluginData) NodeIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns a copy of one node's data
func (p *PluginData) Snapshot(nodeID string) map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[string]string, len(p.entries[nodeID]))
	for k, v := range p.entries[nodeID] {
		out[k] = v
	}
	return out
}

// Begin starts a batch that is applied on Commit
func (p *PluginData) Begin() (ports.MetadataBatch, error) {
	return &pluginBatch{store: p}, nil
}

type pluginWrite struct {
	nodeID, key, value string
}

type pluginBatch struct {
	store  *PluginData
	writes []pluginWrite
	done   bool
}

func (b *pluginBatch) Set(nodeID, key, value string) error {
	b.writes = append(b.writes, pluginWrite{nodeID, key, value})
	return nil
}

func (b *pluginBatch) Commit() error {
	if b.done {
		return nil
	}
	b.done = true
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	for _, w := range b.writes {
		b.store.setLocked(w.nodeID, w.key, w.value)
	}
	return nil
}

func (b *pluginBatch) Rollback() error {
	b.done = true
	b.writes = nil
	return nil
}
