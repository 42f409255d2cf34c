package ports

import (
	"context"

	"linksync/internal/domain"
)

// NodeLookup resolves durable identifiers in the currently open document
type NodeLookup interface {
	NodeByID(id string) (Node, bool)
}

// Importer brings an importable definition into the current document.
// It may fail when the key is revoked, the asset was deleted or the library
// is unreachable.
type Importer interface {
	ImportByKey(ctx context.Context, key string) (Node, error)
}

// FontLoader makes a font asset available for text writes
type FontLoader interface {
	LoadFont(ctx context.Context, font domain.FontName) error
}

// Instancer produces derived copies from definitions and instances
type Instancer interface {
	// DefaultVariant returns the designated default variant of a variant set
	DefaultVariant(set Node) (Node, error)
	// CreateInstance stamps a new template-linked instance of a definition
	CreateInstance(def Node) (Node, error)
	// Duplicate copies a node, preserving instance overrides
	Duplicate(n Node) (Node, error)
	// Detach severs an instance from its definition and returns the
	// resulting independent copy
	Detach(instance Node) (Node, error)
}

// Viewport exposes selection state and navigation. It is only used for
// user feedback.
type Viewport interface {
	Selection() []Node
	Select(nodes ...Node)
	ScrollIntoView(nodes ...Node)

	// Section returns the top-level section (page) containing n
	Section(n Node) Node
	CurrentSection() Node
	SetCurrentSection(section Node) error
}

// Document is the full host document collaborator
type Document interface {
	NodeLookup
	Importer
	FontLoader
	Instancer
	Viewport

	// Roots returns the top-level sections in order
	Roots() []Node
}
