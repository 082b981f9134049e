package entities

import (
	"fmt"
	"time"
)

// DeleteFailure records one remote entry that could not be deleted during a
// decommission run.
type DeleteFailure struct {
	RemoteID string
	Reason   string
}

// RemovalResult is the typed outcome of a decommission run. Fatal errors
// abort the run and are returned separately by the orchestrator; per-entry
// delete failures are collected here and the run still completes.
type RemovalResult struct {
	Label         string
	TrackingID    string
	Deleted       []string
	Failed        []DeleteFailure
	MarkerCleared bool
	Duration      time.Duration
}

// Partial reports whether at least one remote entry survived the delete loop.
func (r *RemovalResult) Partial() bool {
	return len(r.Failed) > 0
}

// Summary returns a human-readable summary of the run.
func (r *RemovalResult) Summary() string {
	s := fmt.Sprintf("Removed %s (tracking %s): %d deleted, %d failed",
		r.Label, r.TrackingID, len(r.Deleted), len(r.Failed))
	if r.MarkerCleared {
		s += ", upload marker cleared"
	}
	return s + fmt.Sprintf(" in %v", r.Duration)
}
