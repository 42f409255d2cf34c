package ports

import "linksync/internal/domain"

// Node is a handle into the host document tree
type Node interface {
	// ID returns the durable identifier, unique within the open document
	ID() string
	Type() domain.NodeType
	Name() string
	SetName(name string) error

	// Key returns the durable, document-independent key of an importable
	// definition. It is empty for every other node.
	Key() string

	// Parent returns nil for top-level sections
	Parent() Node

	// HasChildren reports whether the node type carries a child list at all
	HasChildren() bool
	Children() []Node

	// Get reads a property. Properties the node does not expose read as
	// domain.Unsupported; mixed values read as domain.Indeterminate.
	Get(prop domain.Property) domain.Value
	// Set assigns a concrete value. It fails for unsupported or read-only
	// properties and for values of the wrong kind.
	Set(prop domain.Property, value domain.Value) error

	Bounds() domain.Rect
	MoveTo(x, y float64) error
}

// Walk visits n and every descendant in document order. Returning false from
// visit skips the children of that node.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	if !n.HasChildren() {
		return
	}
	for _, child := range n.Children() {
		Walk(child, visit)
	}
}
