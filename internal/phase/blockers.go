package phase

import "github.com/dmoreno/groundwork/internal/domain"

// BlockersFor filters the snapshot's blockers to those standing against the
// given phase. A blocker applies when it is tagged with the phase, or when it
// is phase-agnostic and the phase is the currently active one. Pure filter:
// no blocker is synthesized and input order is preserved, so callers get
// deterministic ordering across recomputations.
func BlockersFor(snap *Snapshot, p domain.Phase) []domain.ProjectBlocker {
	current := Current(snap)
	var out []domain.ProjectBlocker
	for _, b := range snap.Blockers {
		if !b.Active() {
			continue
		}
		if b.AppliesTo(p, current) {
			out = append(out, b)
		}
	}
	return out
}
