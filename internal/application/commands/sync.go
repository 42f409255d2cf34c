package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"linksync/internal/application"
	"linksync/internal/domain"
	"linksync/internal/logging"
	"linksync/internal/ports"
)

// NodeSyncResult is the outcome for one derived node
type NodeSyncResult struct {
	Derived ports.Node
	Source  ports.Node // nil when resolution failed
	Via     application.ResolvedVia
	Report  domain.SyncReport
}

// Succeeded reports whether the node's source was found and applied
func (r NodeSyncResult) Succeeded() bool {
	return r.Source != nil
}

// SyncSelectionResult contains the result of a sync pass
type SyncSelectionResult struct {
	Stats   domain.SyncStats
	Nodes   []NodeSyncResult
	Message string
}

// SyncSelectionCommand synchronizes every linked node in the selected subtrees
// from its source
type SyncSelectionCommand struct {
	doc       ports.Document
	identity  *application.IdentityStore
	resolver  *application.SourceResolver
	props     *application.PropertySynchronizer
	logger    zerolog.Logger
	Selection []ports.Node
	Config    domain.SyncConfig
}

// NewSyncSelectionCommand creates a new SyncSelectionCommand. A nil config
// enables every group.
func NewSyncSelectionCommand(doc ports.Document, meta ports.MetadataStore, selection []ports.Node, cfg domain.SyncConfig) *SyncSelectionCommand {
	identity := application.NewIdentityStore(meta)
	return &SyncSelectionCommand{
		doc:       doc,
		identity:  identity,
		resolver:  application.NewSourceResolver(doc, doc, identity),
		props:     application.NewPropertySynchronizer(doc),
		logger:    logging.Get("sync"),
		Selection: selection,
		Config:    cfg,
	}
}

// Execute runs the sync. Nodes are processed one after another; a node whose
// source cannot be resolved is counted as failed and the pass continues.
func (c *SyncSelectionCommand) Execute(ctx context.Context) (*SyncSelectionResult, error) {
	result := &SyncSelectionResult{}

	if len(c.Selection) == 0 {
		result.Message = "Select linked elements to sync"
		return result, nil
	}

	cfg := c.Config
	if cfg == nil {
		cfg = domain.DefaultSyncConfig()
	}

	targets := c.CollectLinked()
	if len(targets) == 0 {
		result.Message = "No linked nodes found in selection"
		return result, nil
	}

	start := time.Now()
	for _, target := range targets {
		nodeResult := c.SyncNode(ctx, target, cfg)
		result.Nodes = append(result.Nodes, nodeResult)
		if nodeResult.Succeeded() {
			result.Stats.Succeeded++
			result.Stats.Report.Merge(nodeResult.Report)
		} else {
			result.Stats.Failed++
		}
	}
	logging.LogDuration(c.logger, start, "sync")

	result.Message = fmt.Sprintf("Sync complete: %d updated, %d failed", result.Stats.Succeeded, result.Stats.Failed)
	return result, nil
}

// CollectLinked returns every node in the selected subtrees that carries a
// source id, in document order. Nodes reached twice through overlapping
// selections are listed once.
func (c *SyncSelectionCommand) CollectLinked() []ports.Node {
	var linked []ports.Node
	seen := make(map[string]bool)
	for _, root := range c.Selection {
		ports.Walk(root, func(n ports.Node) bool {
			if seen[n.ID()] {
				return false
			}
			seen[n.ID()] = true
			if c.identity.HasLink(n.ID()) {
				linked = append(linked, n)
			}
			return true
		})
	}
	return linked
}

// SyncNode resolves the source of one derived node and applies the config
func (c *SyncSelectionCommand) SyncNode(ctx context.Context, derived ports.Node, cfg domain.SyncConfig) NodeSyncResult {
	source, via := c.resolver.Resolve(ctx, derived)
	if source == nil {
		c.logger.Warn().Str("node", derived.ID()).Str("name", derived.Name()).Msg("Source not found")
		return NodeSyncResult{Derived: derived, Via: via}
	}

	report := c.props.Apply(ctx, source, derived, cfg)
	return NodeSyncResult{Derived: derived, Source: source, Via: via, Report: report}
}
