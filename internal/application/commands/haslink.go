package commands

import (
	"linksync/internal/application"
	"linksync/internal/ports"
)

// HasLinkQuery reports whether the first selected node is a derived copy
type HasLinkQuery struct {
	identity  *application.IdentityStore
	Selection []ports.Node
}

// NewHasLinkQuery creates a new HasLinkQuery
func NewHasLinkQuery(meta ports.MetadataStore, selection []ports.Node) *HasLinkQuery {
	return &HasLinkQuery{
		identity:  application.NewIdentityStore(meta),
		Selection: selection,
	}
}

// Execute runs the query
func (q *HasLinkQuery) Execute() bool {
	if len(q.Selection) == 0 {
		return false
	}
	return q.identity.HasLink(q.Selection[0].ID())
}
