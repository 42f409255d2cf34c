package commands

import (
	"context"
	"fmt"

	"linksync/internal/application"
	"linksync/internal/ports"
)

// GoToOutcome describes what happened when navigating to a source
type GoToOutcome int

const (
	GoToNoSelection GoToOutcome = iota
	GoToNotLinked
	GoToSourceMissing
	GoToNavigated
	GoToNavigatedSwitchedSection
)

func (o GoToOutcome) String() string {
	switch o {
	case GoToNoSelection:
		return "no selection"
	case GoToNotLinked:
		return "not linked"
	case GoToSourceMissing:
		return "source missing"
	case GoToNavigated:
		return "navigated"
	case GoToNavigatedSwitchedSection:
		return "navigated (page switched)"
	default:
		return "unknown"
	}
}

// GoToSourceResult contains the result of navigating to a source
type GoToSourceResult struct {
	Outcome GoToOutcome
	Source  ports.Node
	Message string
}

// GoToSourceCommand selects and reveals the source of the first selected node
type GoToSourceCommand struct {
	doc       ports.Document
	identity  *application.IdentityStore
	Selection []ports.Node
}

// NewGoToSourceCommand creates a new GoToSourceCommand
func NewGoToSourceCommand(doc ports.Document, meta ports.MetadataStore, selection []ports.Node) *GoToSourceCommand {
	return &GoToSourceCommand{
		doc:       doc,
		identity:  application.NewIdentityStore(meta),
		Selection: selection,
	}
}

// Execute runs the go to source command. Only the direct source id is
// followed; sources that would need an import are reported missing.
func (c *GoToSourceCommand) Execute(ctx context.Context) (*GoToSourceResult, error) {
	if len(c.Selection) == 0 {
		return &GoToSourceResult{Outcome: GoToNoSelection, Message: "Select a linked element"}, nil
	}

	node := c.Selection[0]
	rec, err := c.identity.Read(node.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to read identity of %s: %w", node.ID(), err)
	}
	if !rec.HasLink() {
		return &GoToSourceResult{Outcome: GoToNotLinked, Message: "Selected element is not linked to a source"}, nil
	}

	source, ok := c.doc.NodeByID(rec.SourceID)
	if !ok {
		return &GoToSourceResult{
			Outcome: GoToSourceMissing,
			Message: "Source component is not in this file (or was deleted).",
		}, nil
	}

	outcome := GoToNavigated
	section := c.doc.Section(source)
	current := c.doc.CurrentSection()
	if section != nil && (current == nil || section.ID() != current.ID()) {
		if err := c.doc.SetCurrentSection(section); err != nil {
			return nil, fmt.Errorf("failed to switch to page %s: %w", section.Name(), err)
		}
		outcome = GoToNavigatedSwitchedSection
	}

	c.doc.Select(source)
	c.doc.ScrollIntoView(source)

	return &GoToSourceResult{Outcome: outcome, Source: source, Message: "Moved to Source Component"}, nil
}
