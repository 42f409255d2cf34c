package domain

import (
	"strconv"
	"strings"
)

// Plugin data keys holding the identity record of a derived node
const (
	KeySourceID  = "sourceId"
	KeyIndexPath = "indexPath"
	KeyRootKey   = "rootKey"
)

// IdentityRecord links a derived node back to the node it was copied from
type IdentityRecord struct {
	SourceID  string    // durable id of the origin node at link time
	IndexPath IndexPath // structural path from the linked root
	RootKey   string    // durable key of an importable root; empty when not importable
}

// HasLink reports whether the record names a source
func (r IdentityRecord) HasLink() bool {
	return r.SourceID != ""
}

// CanFallback reports whether structural resolution is possible
func (r IdentityRecord) CanFallback() bool {
	return r.RootKey != "" && r.IndexPath != ""
}

// IndexPath is a structural address of the form root, root-0, root-0-2, ...
type IndexPath string

const (
	RootPath      IndexPath = "root"
	pathSeparator           = "-"
)

// Child returns the path of the i-th child of the node at p
func (p IndexPath) Child(i int) IndexPath {
	return IndexPath(string(p) + pathSeparator + strconv.Itoa(i))
}

// IsRoot reports whether p addresses the root itself
func (p IndexPath) IsRoot() bool {
	return p == RootPath
}

// Indices parses the child indices of p. It fails for paths that do not start
// with the root token or contain a token that is not a non-negative integer.
func (p IndexPath) Indices() ([]int, bool) {
	parts := strings.Split(string(p), pathSeparator)
	if len(parts) == 0 || parts[0] != string(RootPath) {
		return nil, false
	}
	indices := make([]int, 0, len(parts)-1)
	for _, part := range parts[1:] {
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 {
			return nil, false
		}
		indices = append(indices, i)
	}
	return indices, true
}

// Depth returns the number of child steps in p, or -1 when p is malformed
func (p IndexPath) Depth() int {
	indices, ok := p.Indices()
	if !ok {
		return -1
	}
	return len(indices)
}

func (p IndexPath) String() string {
	return string(p)
}
