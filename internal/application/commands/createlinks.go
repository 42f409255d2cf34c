package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/logging"
	"linksync/internal/ports"
)

// DefaultLinkMargin is the gap between an original and its derived copy
const DefaultLinkMargin = 50.0

// LinkedNamePrefix is prepended to the name of every derived root
const LinkedNamePrefix = "Linked: "

// CreateLinksResult contains the result of creating derived copies
type CreateLinksResult struct {
	Created  []ports.Node // derived roots, in selection order
	Records  int          // identity records written
	Skipped  int          // selected nodes of an ineligible type
	Failures []error      // one per selected node that failed
	Message  string
}

// CreateLinksCommand creates a linked, detached copy of each selected
// component, variant set or instance
type CreateLinksCommand struct {
	doc       ports.Document
	identity  *application.IdentityStore
	logger    zerolog.Logger
	Selection []ports.Node
	Margin    float64
}

// NewCreateLinksCommand creates a new CreateLinksCommand
func NewCreateLinksCommand(doc ports.Document, meta ports.MetadataStore, selection []ports.Node) *CreateLinksCommand {
	return &CreateLinksCommand{
		doc:       doc,
		identity:  application.NewIdentityStore(meta),
		logger:    logging.Get("linker"),
		Selection: selection,
		Margin:    DefaultLinkMargin,
	}
}

// Execute runs the create links command. Failures are recorded per selected
// node and never stop the remaining nodes.
func (c *CreateLinksCommand) Execute(ctx context.Context) (*CreateLinksResult, error) {
	result := &CreateLinksResult{}

	if len(c.Selection) == 0 {
		result.Message = "Select a Component, Instance, or Component Set"
		return result, nil
	}

	for _, node := range c.Selection {
		if !node.Type().Linkable() {
			c.logger.Debug().Str("node", node.ID()).Str("type", node.Type().String()).Msg("Skipping ineligible node")
			result.Skipped++
			continue
		}

		derived, records, err := c.link(node)
		if err != nil {
			c.logger.Error().Err(err).Str("node", node.ID()).Str("name", node.Name()).Msg("Failed to create link")
			result.Failures = append(result.Failures, err)
			continue
		}

		result.Created = append(result.Created, derived)
		result.Records += records
	}

	if len(result.Created) > 0 {
		c.doc.Select(result.Created...)
	}

	result.Message = fmt.Sprintf("Created %d linked element(s)", len(result.Created))
	return result, nil
}

// link produces the derived copy of one selected node and stamps identity
// records onto it
func (c *CreateLinksCommand) link(node ports.Node) (ports.Node, int, error) {
	structural := node
	var produced ports.Node
	var err error

	switch node.Type() {
	case domain.NodeTypeComponentSet:
		structural, err = c.doc.DefaultVariant(node)
		if err != nil {
			return nil, 0, &application.LinkError{NodeID: node.ID(), Reason: "no default variant", Err: err}
		}
		produced, err = c.doc.CreateInstance(structural)
	case domain.NodeTypeComponent:
		produced, err = c.doc.CreateInstance(node)
	case domain.NodeTypeInstance:
		// Duplicating keeps the instance's overrides in the derived copy
		produced, err = c.doc.Duplicate(node)
	default:
		return nil, 0, &application.LinkError{NodeID: node.ID(), Reason: node.Type().String(), Err: application.ErrIneligibleNode}
	}
	if err != nil {
		return nil, 0, &application.LinkError{NodeID: node.ID(), Reason: "cannot instantiate", Err: err}
	}

	derived, err := c.doc.Detach(produced)
	if err != nil {
		return nil, 0, &application.LinkError{NodeID: node.ID(), Reason: "cannot detach", Err: err}
	}

	bounds := node.Bounds()
	if err := derived.MoveTo(bounds.X+bounds.Width+c.Margin, bounds.Y); err != nil {
		c.logger.Debug().Err(err).Str("node", derived.ID()).Msg("Could not place derived copy")
	}
	if err := derived.SetName(LinkedNamePrefix + structural.Name()); err != nil {
		c.logger.Debug().Err(err).Str("node", derived.ID()).Msg("Could not name derived copy")
	}

	pairs := application.PairSubtrees(structural, derived, RootKeyFor(node, structural))
	records := make(map[string]domain.IdentityRecord, len(pairs))
	order := make([]string, 0, len(pairs))
	for _, p := range pairs {
		records[p.Derived.ID()] = p.Record
		order = append(order, p.Derived.ID())
	}
	if err := c.identity.WriteAll(records, order); err != nil {
		return nil, 0, &application.LinkError{NodeID: node.ID(), Reason: "cannot write identity records", Err: err}
	}

	c.logger.Info().
		Str("source", structural.ID()).
		Str("derived", derived.ID()).
		Int("records", len(pairs)).
		Msg("Created linked copy")

	return derived, len(pairs), nil
}

// RootKeyFor returns the durable key recorded for a link. Only a directly
// selected definition can be re-imported as an equivalent root; variant-set
// defaults and instances get no key.
func RootKeyFor(selected, structural ports.Node) string {
	if selected.Type() != domain.NodeTypeComponent || structural.Type() != domain.NodeTypeComponent {
		return ""
	}
	return structural.Key()
}
