package commands

import (
	"context"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// BuildTreeCommand snapshots the document tree with link markers
type BuildTreeCommand struct {
	doc      ports.Document
	identity *application.IdentityStore
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(doc ports.Document, meta ports.MetadataStore) *BuildTreeCommand {
	return &BuildTreeCommand{doc: doc, identity: application.NewIdentityStore(meta)}
}

// Execute returns one tree per page. Pages are expanded, everything else collapsed.
func (c *BuildTreeCommand) Execute(ctx context.Context) ([]*domain.TreeNode, error) {
	roots := c.doc.Roots()
	trees := make([]*domain.TreeNode, 0, len(roots))
	for _, root := range roots {
		tree, err := c.snapshot(root, nil)
		if err != nil {
			return nil, err
		}
		tree.IsExpanded = len(tree.Children) > 0
		trees = append(trees, tree)
	}
	return trees, nil
}

func (c *BuildTreeCommand) snapshot(n ports.Node, parent *domain.TreeNode) (*domain.TreeNode, error) {
	rec, err := c.identity.Read(n.ID())
	if err != nil {
		return nil, err
	}
	tree := &domain.TreeNode{
		Type:     n.Type(),
		ID:       n.ID(),
		Name:     n.Name(),
		Linked:   rec.HasLink(),
		SourceID: rec.SourceID,
		Parent:   parent,
	}
	if n.HasChildren() {
		for _, child := range n.Children() {
			sub, err := c.snapshot(child, tree)
			if err != nil {
				return nil, err
			}
			tree.Children = append(tree.Children, sub)
		}
	}
	return tree, nil
}
