package memdoc

import (
	"fmt"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// DefaultVariant returns the first component of a variant set
func (d *Document) DefaultVariant(set ports.Node) (ports.Node, error) {
	n, err := d.own(set)
	if err != nil {
		return nil, err
	}
	if n.typ != domain.NodeTypeComponentSet {
		return nil, fmt.Errorf("%w: %s is a %s, not a component set", application.ErrIneligibleNode, n.id, n.typ)
	}
	for _, c := range n.children {
		if c.typ == domain.NodeTypeComponent {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: component set %s has no variants", application.ErrIneligibleNode, n.id)
}

// CreateInstance stamps an instance of def onto the current page
func (d *Document) CreateInstance(def ports.Node) (ports.Node, error) {
	n, err := d.own(def)
	if err != nil {
		return nil, err
	}
	if n.typ != domain.NodeTypeComponent {
		return nil, fmt.Errorf("%w: %s is a %s, not a component", application.ErrIneligibleNode, n.id, n.typ)
	}
	if d.current == nil {
		return nil, fmt.Errorf("%w: document has no page", application.ErrNotFound)
	}

	inst := d.cloneTree(n, d.current, false)
	inst.typ = domain.NodeTypeInstance
	inst.key = ""
	inst.mainComponent = n
	d.current.children = append(d.current.children, inst)
	return inst, nil
}

// Duplicate copies n, overrides included, and inserts the copy right after it
func (d *Document) Duplicate(node ports.Node) (ports.Node, error) {
	n, err := d.own(node)
	if err != nil {
		return nil, err
	}
	if n.typ == domain.NodeTypePage {
		return nil, fmt.Errorf("%w: pages cannot be duplicated", application.ErrIneligibleNode)
	}

	parent := n.parent
	if parent == nil {
		parent = d.current
	}
	dup := d.cloneTree(n, parent, false)
	dup.key = ""

	at := n.IndexInParent()
	if at < 0 {
		parent.children = append(parent.children, dup)
		return dup, nil
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[at+2:], parent.children[at+1:])
	parent.children[at+1] = dup
	return dup, nil
}

// Detach turns an instance into an independent frame. Nested instances keep
// their own template link.
func (d *Document) Detach(instance ports.Node) (ports.Node, error) {
	n, err := d.own(instance)
	if err != nil {
		return nil, err
	}
	if n.typ != domain.NodeTypeInstance {
		return nil, fmt.Errorf("%w: %s is a %s, not an instance", application.ErrIneligibleNode, n.id, n.typ)
	}
	n.typ = domain.NodeTypeFrame
	n.mainComponent = nil
	return n, nil
}

// cloneTree copies src and its subtree with fresh ids under parent. Copies
// keep node types; the caller adjusts the root.
func (d *Document) cloneTree(src *Node, parent *Node, library bool) *Node {
	spec := NodeSpec{
		Type:   src.typ,
		Name:   src.name,
		Bounds: src.bounds,
		Props:  src.props,
	}
	for p := range src.readOnly {
		spec.ReadOnly = append(spec.ReadOnly, p)
	}
	if src.typ == domain.NodeTypeComponent {
		spec.Key = src.key
	}

	n := d.newNode(spec, library)
	n.parent = parent
	n.mainComponent = src.mainComponent
	for _, c := range src.children {
		n.children = append(n.children, d.cloneTree(c, n, library))
	}
	return n
}

// own maps a ports.Node back to this document's node
func (d *Document) own(node ports.Node) (*Node, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", application.ErrNotFound)
	}
	if n, ok := node.(*Node); ok && n.doc == d {
		return n, nil
	}
	n, ok := d.index[node.ID()]
	if !ok {
		return nil, fmt.Errorf("%w: node %s", application.ErrNotFound, node.ID())
	}
	return n, nil
}
