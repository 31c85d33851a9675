package domain

import "time"

// ProjectBlocker is a standing condition preventing one or more phases from
// completing. Blockers are created and resolved by the originating fact
// source (delivery, acclimation, punch, or a person); the phase engine only
// reads them.
type ProjectBlocker struct {
	ID        string
	ProjectID string
	// Phases the blocker is tagged to. Empty means "any phase": the blocker
	// applies to whichever phase is currently active.
	Phases []Phase
	Reason string
	// Source and SourceRef identify the originating subsystem and its record
	// so the subsystem can find and resolve its own blockers.
	Source     BlockerSource
	SourceRef  string
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// Active reports whether the blocker is still standing.
func (b *ProjectBlocker) Active() bool {
	return b.ResolvedAt == nil
}

// AppliesTo reports whether the blocker is tagged to the given phase. An
// untagged (any-phase) blocker applies only to the current phase.
func (b *ProjectBlocker) AppliesTo(phase, current Phase) bool {
	if len(b.Phases) == 0 {
		return phase == current
	}
	for _, p := range b.Phases {
		if p == phase {
			return true
		}
	}
	return false
}
