package application

import (
	"context"

	"github.com/rs/zerolog"

	"linksync/internal/domain"
	"linksync/internal/logging"
	"linksync/internal/ports"
)

// PropertySynchronizer copies enabled property groups from a source node to
// its derived copy. Every property is copied independently: skips and
// rejections never stop the remaining properties or groups.
type PropertySynchronizer struct {
	fonts  ports.FontLoader
	logger zerolog.Logger
}

// NewPropertySynchronizer creates a new PropertySynchronizer
func NewPropertySynchronizer(fonts ports.FontLoader) *PropertySynchronizer {
	return &PropertySynchronizer{
		fonts:  fonts,
		logger: logging.Get("properties"),
	}
}

// Apply copies every enabled group from source to derived
func (s *PropertySynchronizer) Apply(ctx context.Context, source, derived ports.Node, cfg domain.SyncConfig) domain.SyncReport {
	var report domain.SyncReport

	for _, group := range cfg.EnabledGroups() {
		switch group {
		case domain.GroupName:
			report.Add(s.copyName(source, derived))
		case domain.GroupText:
			report.Merge(s.applyText(ctx, source, derived))
		default:
			report.Merge(s.copyAll(source, derived, domain.GroupProperties(group)))
		}
	}

	s.logger.Debug().
		Str("source", source.ID()).
		Str("derived", derived.ID()).
		Int("copied", report.Copied).
		Int("skipped", report.Skipped).
		Int("rejected", report.Rejected).
		Msg("Properties applied")

	return report
}

// CopyProperty copies one property using the skip-on-failure policy
func (s *PropertySynchronizer) CopyProperty(source, derived ports.Node, prop domain.Property) domain.PropertyOutcome {
	value := source.Get(prop)
	switch value.Kind() {
	case domain.ValueIndeterminate:
		return domain.OutcomeSkippedIndeterminate
	case domain.ValueUnsupported:
		return domain.OutcomeSkippedUnsupported
	}

	if derived.Get(prop).IsUnsupported() {
		return domain.OutcomeSkippedUnsupported
	}

	if err := derived.Set(prop, value); err != nil {
		s.logger.Trace().Err(err).Str("node", derived.ID()).Str("property", string(prop)).Msg("Property write rejected")
		return domain.OutcomeRejected
	}
	return domain.OutcomeCopied
}

func (s *PropertySynchronizer) copyAll(source, derived ports.Node, props []domain.Property) domain.SyncReport {
	var report domain.SyncReport
	for _, prop := range props {
		report.Add(s.CopyProperty(source, derived, prop))
	}
	return report
}

func (s *PropertySynchronizer) copyName(source, derived ports.Node) domain.PropertyOutcome {
	if err := derived.SetName(source.Name()); err != nil {
		s.logger.Trace().Err(err).Str("node", derived.ID()).Msg("Name write rejected")
		return domain.OutcomeRejected
	}
	return domain.OutcomeCopied
}

// applyText only runs between two text nodes. The font is written after the
// asset loads; a load failure leaves the font untouched and the remaining
// text properties are still copied.
func (s *PropertySynchronizer) applyText(ctx context.Context, source, derived ports.Node) domain.SyncReport {
	var report domain.SyncReport
	if source.Type() != domain.NodeTypeText || derived.Type() != domain.NodeTypeText {
		return report
	}

	report.Add(s.copyFont(ctx, source, derived))
	report.Merge(s.copyAll(source, derived, domain.GroupProperties(domain.GroupText)))
	return report
}

func (s *PropertySynchronizer) copyFont(ctx context.Context, source, derived ports.Node) domain.PropertyOutcome {
	value := source.Get(domain.PropFontName)
	if value.IsIndeterminate() {
		return domain.OutcomeSkippedIndeterminate
	}
	font, ok := value.Font()
	if !ok {
		return domain.OutcomeSkippedUnsupported
	}

	if s.fonts != nil {
		if err := s.fonts.LoadFont(ctx, font); err != nil {
			s.logger.Warn().Err(err).Str("font", font.String()).Str("node", derived.ID()).Msg("Font load failed")
			return domain.OutcomeRejected
		}
	}

	if err := derived.Set(domain.PropFontName, value); err != nil {
		s.logger.Trace().Err(err).Str("node", derived.ID()).Msg("Font write rejected")
		return domain.OutcomeRejected
	}
	return domain.OutcomeCopied
}
