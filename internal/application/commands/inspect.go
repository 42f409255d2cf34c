package commands

import (
	"context"
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/ports"
)

// MixedValue is how indeterminate values appear in an inspection
const MixedValue = "<mixed>"

// InspectResult describes one node, its identity record and its source
type InspectResult struct {
	Node       ports.Node
	Record     domain.IdentityRecord
	Source     ports.Node // nil when unlinked or unresolvable
	Via        application.ResolvedVia
	Properties map[string]any
}

// Data returns the inspection as plain maps and slices, ready for encoding
func (r *InspectResult) Data() map[string]any {
	data := map[string]any{
		"id":         r.Node.ID(),
		"type":       r.Node.Type().String(),
		"name":       r.Node.Name(),
		"properties": r.Properties,
	}
	if r.Record.HasLink() {
		link := map[string]any{
			"sourceId":  r.Record.SourceID,
			"indexPath": r.Record.IndexPath.String(),
			"resolved":  r.Via.String(),
		}
		if r.Record.RootKey != "" {
			link["rootKey"] = r.Record.RootKey
		}
		if r.Source != nil {
			link["sourceName"] = r.Source.Name()
		}
		data["link"] = link
	}
	return data
}

// Query evaluates a JSONPath expression against Data
func (r *InspectResult) Query(expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, &application.ValidationError{Field: "query", Message: fmt.Sprintf("invalid jsonpath '%s': %v", expr, err)}
	}
	return x.Get(r.Data()), nil
}

// RenderJSON renders inspection data as indented JSON with sorted keys
func RenderJSON(v any) string {
	return oj.JSON(v, &ojg.Options{Indent: 2, Sort: true})
}

// InspectNodeCommand reports a node's properties and link state
type InspectNodeCommand struct {
	doc      ports.Document
	identity *application.IdentityStore
	resolver *application.SourceResolver
	NodeID   string
	// Resolve also runs the import fallback when the source id is gone
	Resolve bool
}

// NewInspectNodeCommand creates a new InspectNodeCommand
func NewInspectNodeCommand(doc ports.Document, meta ports.MetadataStore, nodeID string) *InspectNodeCommand {
	identity := application.NewIdentityStore(meta)
	return &InspectNodeCommand{
		doc:      doc,
		identity: identity,
		resolver: application.NewSourceResolver(doc, doc, identity),
		NodeID:   nodeID,
	}
}

// Validate checks that a node id was given
func (c *InspectNodeCommand) Validate() error {
	return application.ValidateRequired("nodeID", c.NodeID)
}

// Execute runs the inspect command
func (c *InspectNodeCommand) Execute(ctx context.Context) (*InspectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	node, ok := c.doc.NodeByID(c.NodeID)
	if !ok {
		return nil, fmt.Errorf("%w: node %s", application.ErrNotFound, c.NodeID)
	}

	rec, err := c.identity.Read(node.ID())
	if err != nil {
		return nil, err
	}

	result := &InspectResult{
		Node:       node,
		Record:     rec,
		Properties: make(map[string]any),
	}

	for _, prop := range domain.AllProperties() {
		v := node.Get(prop)
		switch v.Kind() {
		case domain.ValueConcrete:
			if font, ok := v.Font(); ok {
				result.Properties[string(prop)] = map[string]any{"family": font.Family, "style": font.Style}
				continue
			}
			result.Properties[string(prop)] = v.Raw()
		case domain.ValueIndeterminate:
			result.Properties[string(prop)] = MixedValue
		}
	}

	if rec.HasLink() {
		if c.Resolve {
			result.Source, result.Via = c.resolver.ResolveRecord(ctx, rec)
		} else if source, ok := c.doc.NodeByID(rec.SourceID); ok {
			result.Source, result.Via = source, application.ResolvedDirect
		}
	}

	return result, nil
}
