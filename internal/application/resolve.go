package application

import (
	"context"

	"github.com/rs/zerolog"

	"linksync/internal/domain"
	"linksync/internal/logging"
	"linksync/internal/ports"
)

// ResolvePath returns the descendant of root addressed by path. Malformed
// paths, out-of-range indices and leaf nodes along the way yield false.
func ResolvePath(root ports.Node, path domain.IndexPath) (ports.Node, bool) {
	if root == nil {
		return nil, false
	}
	if path.IsRoot() {
		return root, true
	}

	indices, ok := path.Indices()
	if !ok {
		return nil, false
	}

	current := root
	for _, i := range indices {
		if !current.HasChildren() {
			return nil, false
		}
		children := current.Children()
		if i >= len(children) || children[i] == nil {
			return nil, false
		}
		current = children[i]
	}
	return current, true
}

// ResolvedVia records which strategy found a source
type ResolvedVia int

const (
	ResolvedNone ResolvedVia = iota
	ResolvedDirect
	ResolvedImport
)

func (v ResolvedVia) String() string {
	switch v {
	case ResolvedDirect:
		return "direct"
	case ResolvedImport:
		return "import"
	default:
		return "none"
	}
}

// SourceResolver recovers the live source node of a derived node
type SourceResolver struct {
	lookup   ports.NodeLookup
	importer ports.Importer
	identity *IdentityStore
	logger   zerolog.Logger
}

// NewSourceResolver creates a new SourceResolver
func NewSourceResolver(lookup ports.NodeLookup, importer ports.Importer, identity *IdentityStore) *SourceResolver {
	return &SourceResolver{
		lookup:   lookup,
		importer: importer,
		identity: identity,
		logger:   logging.Get("resolver"),
	}
}

// Resolve returns the source of derived, trying the direct id first and then
// the import-and-path fallback. Failures of either strategy are reported as
// not found.
func (r *SourceResolver) Resolve(ctx context.Context, derived ports.Node) (ports.Node, ResolvedVia) {
	rec, err := r.identity.Read(derived.ID())
	if err != nil {
		r.logger.Warn().Err(err).Str("node", derived.ID()).Msg("Failed to read identity record")
		return nil, ResolvedNone
	}
	return r.ResolveRecord(ctx, rec)
}

// ResolveRecord resolves an already loaded identity record
func (r *SourceResolver) ResolveRecord(ctx context.Context, rec domain.IdentityRecord) (ports.Node, ResolvedVia) {
	if !rec.HasLink() {
		return nil, ResolvedNone
	}

	if source, ok := r.lookup.NodeByID(rec.SourceID); ok {
		return source, ResolvedDirect
	}

	if !rec.CanFallback() || r.importer == nil {
		r.logger.Debug().Str("source", rec.SourceID).Msg("Source not found and no fallback available")
		return nil, ResolvedNone
	}

	root, err := r.importer.ImportByKey(ctx, rec.RootKey)
	if err != nil {
		r.logger.Debug().Err(err).Str("rootKey", rec.RootKey).Msg("Fallback import failed")
		return nil, ResolvedNone
	}

	source, ok := ResolvePath(root, rec.IndexPath)
	if !ok {
		r.logger.Debug().
			Str("rootKey", rec.RootKey).
			Str("indexPath", rec.IndexPath.String()).
			Msg("Index path does not resolve in imported root")
		return nil, ResolvedNone
	}
	return source, ResolvedImport
}
