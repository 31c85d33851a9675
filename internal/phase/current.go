package phase

import "github.com/dmoreno/groundwork/internal/domain"

// Current returns the active canonical phase: the first incomplete phase in
// canonical order. If every phase is complete the job is in closeout. Total:
// always returns a canonical phase, even for an empty snapshot.
//
// The scan never skips ahead, so "current" is always the unique minimal
// incomplete phase: a later phase with partial progress stays upcoming until
// its predecessors finish.
func Current(snap *Snapshot) domain.Phase {
	for _, p := range domain.PhaseOrder {
		if !IsComplete(snap, p) {
			return p
		}
	}
	return domain.PhaseCloseout
}
