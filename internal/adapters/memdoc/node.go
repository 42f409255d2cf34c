package memdoc

import (
	"fmt"
	"sort"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// Node implements ports.Node for the in-memory document
type Node struct {
	doc      *Document
	id       string
	typ      domain.NodeType
	name     string
	key      string
	parent   *Node
	children []*Node
	props    map[domain.Property]domain.Value
	readOnly map[domain.Property]bool
	bounds   domain.Rect

	// mainComponent is set on instances only
	mainComponent *Node
	// library marks definitions that live outside the document
	library bool
}

// Ensure Node implements ports.Node
var _ ports.Node = (*Node)(nil)

func (n *Node) ID() string            { return n.id }
func (n *Node) Type() domain.NodeType { return n.typ }
func (n *Node) Name() string          { return n.name }
func (n *Node) Key() string           { return n.key }
func (n *Node) Bounds() domain.Rect   { return n.bounds }

// SetName renames the node
func (n *Node) SetName(name string) error {
	if n.typ == domain.NodeTypePage && name == "" {
		return &application.PropertyError{NodeID: n.id, Property: "name", Err: application.ErrTypeMismatch}
	}
	n.name = name
	return nil
}

// Parent returns nil for pages, library definitions and imported roots
func (n *Node) Parent() ports.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// HasChildren reports whether the node type has a child list
func (n *Node) HasChildren() bool {
	switch n.typ {
	case domain.NodeTypeText, domain.NodeTypeRectangle, domain.NodeTypeEllipse, domain.NodeTypeVector:
		return false
	default:
		return true
	}
}

// Children returns the child list in document order
func (n *Node) Children() []ports.Node {
	out := make([]ports.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ChildNodes returns the concrete children; callers must not modify the slice
func (n *Node) ChildNodes() []*Node {
	return n.children
}

// ChildAt returns the i-th child or nil
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// MainComponent returns the definition an instance was stamped from
func (n *Node) MainComponent() *Node {
	return n.mainComponent
}

// SetMainComponent restores the template link of a loaded instance
func (n *Node) SetMainComponent(def *Node) {
	n.mainComponent = def
}

// Get reads a property
func (n *Node) Get(prop domain.Property) domain.Value {
	if !Supports(n.typ, prop) {
		return domain.Unsupported
	}
	if v, ok := n.props[prop]; ok {
		return v
	}
	if def, ok := defaults[prop]; ok {
		return domain.Concrete(deepCopy(def))
	}
	return domain.Unsupported
}

// Set assigns a concrete value
func (n *Node) Set(prop domain.Property, value domain.Value) error {
	if !Supports(n.typ, prop) {
		return &application.PropertyError{NodeID: n.id, Property: string(prop), Err: application.ErrPropertyUnsupported}
	}
	if n.readOnly[prop] {
		return &application.PropertyError{NodeID: n.id, Property: string(prop), Err: application.ErrPropertyReadOnly}
	}
	if !value.IsConcrete() {
		return &application.PropertyError{NodeID: n.id, Property: string(prop), Err: application.ErrTypeMismatch}
	}
	if current := n.Get(prop); current.IsConcrete() && !compatible(current.Raw(), value.Raw()) {
		return &application.PropertyError{
			NodeID:   n.id,
			Property: string(prop),
			Err:      fmt.Errorf("%w: cannot assign %T to %T", application.ErrTypeMismatch, value.Raw(), current.Raw()),
		}
	}
	n.props[prop] = copyValue(value)
	return nil
}

// SetMixed marks a property as indeterminate, as a text node with mixed
// styling would report it
func (n *Node) SetMixed(prop domain.Property) {
	if Supports(n.typ, prop) {
		n.props[prop] = domain.Indeterminate
	}
}

// SetReadOnly toggles write protection for a property
func (n *Node) SetReadOnly(prop domain.Property, readOnly bool) {
	if readOnly {
		n.readOnly[prop] = true
		return
	}
	delete(n.readOnly, prop)
}

// ReadOnly lists the write-protected properties in name order
func (n *Node) ReadOnly() []domain.Property {
	out := make([]domain.Property, 0, len(n.readOnly))
	for p := range n.readOnly {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Props returns the explicitly set properties in name order
func (n *Node) Props() []domain.Property {
	out := make([]domain.Property, 0, len(n.props))
	for p := range n.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MoveTo positions the node
func (n *Node) MoveTo(x, y float64) error {
	if n.typ == domain.NodeTypePage {
		return &application.PropertyError{NodeID: n.id, Property: "position", Err: application.ErrPropertyUnsupported}
	}
	n.bounds.X = x
	n.bounds.Y = y
	return nil
}

// Resize changes the node extent
func (n *Node) Resize(width, height float64) {
	n.bounds.Width = width
	n.bounds.Height = height
}

// IndexInParent returns the position of n among its siblings, or -1
func (n *Node) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}
