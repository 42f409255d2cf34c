package domain

// PropertyOutcome is the result of copying one property
type PropertyOutcome int

const (
	OutcomeCopied PropertyOutcome = iota
	OutcomeSkippedIndeterminate
	OutcomeSkippedUnsupported
	OutcomeRejected
)

func (o PropertyOutcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkippedIndeterminate:
		return "skipped (mixed)"
	case OutcomeSkippedUnsupported:
		return "skipped (unsupported)"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SyncReport accumulates per-property outcomes for one node
type SyncReport struct {
	Copied   int
	Skipped  int
	Rejected int
}

// Add folds one outcome into the report
func (r *SyncReport) Add(o PropertyOutcome) {
	switch o {
	case OutcomeCopied:
		r.Copied++
	case OutcomeRejected:
		r.Rejected++
	default:
		r.Skipped++
	}
}

// Merge adds the counts of other into r
func (r *SyncReport) Merge(other SyncReport) {
	r.Copied += other.Copied
	r.Skipped += other.Skipped
	r.Rejected += other.Rejected
}

// SyncStats aggregates the outcome of a sync pass over a selection
type SyncStats struct {
	Succeeded int
	Failed    int
	Report    SyncReport
}
