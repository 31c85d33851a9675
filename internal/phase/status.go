package phase

import "github.com/dmoreno/groundwork/internal/domain"

// Status is a phase's derived display state. It is recomputed from facts on
// every call; there are no time-based transitions and no terminal failure
// state. Blocked is always recoverable once the blockers clear.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusBlocked   Status = "blocked"
	StatusUpcoming  Status = "upcoming"
)

// StatusOf resolves a phase's status from three facts, in precedence order:
//
//  1. complete: completed, regardless of blockers
//  2. current with blockers: blocked
//  3. current without blockers: current
//  4. not current: blocked if blockers are standing, else upcoming
//
// Rule 4 lets a future phase warn that starting it will immediately stall,
// but it is never current until its predecessors complete.
func StatusOf(snap *Snapshot, p domain.Phase) Status {
	if IsComplete(snap, p) {
		return StatusCompleted
	}
	blocked := len(BlockersFor(snap, p)) > 0
	if Current(snap) == p {
		if blocked {
			return StatusBlocked
		}
		return StatusCurrent
	}
	if blocked {
		return StatusBlocked
	}
	return StatusUpcoming
}

// PhaseView is one canonical phase's derived state for display.
type PhaseView struct {
	Phase    domain.Phase
	Config   domain.PhaseConfig
	Status   Status
	Blockers []domain.ProjectBlocker
	// Advisory carries non-blocking compliance notes, such as acclimation
	// readings outside the material's envelope. Advisories never affect
	// completion.
	Advisory string
}

// Timeline derives the full seven-phase view for a job. One view per
// canonical phase, in canonical order.
func Timeline(snap *Snapshot) []PhaseView {
	current := Current(snap)
	views := make([]PhaseView, 0, len(domain.PhaseOrder))
	for _, p := range domain.PhaseOrder {
		cfg, _ := domain.ConfigFor(p)
		bl := BlockersFor(snap, p)
		v := PhaseView{
			Phase:    p,
			Config:   cfg,
			Status:   statusFrom(IsComplete(snap, p), p == current, bl),
			Blockers: bl,
		}
		if p == domain.PhaseAcclimation {
			v.Advisory = acclimationAdvisory(snap)
		}
		views = append(views, v)
	}
	return views
}

// statusFrom applies the precedence rules to precomputed facts.
func statusFrom(complete, current bool, blockers []domain.ProjectBlocker) Status {
	switch {
	case complete:
		return StatusCompleted
	case current && len(blockers) > 0:
		return StatusBlocked
	case current:
		return StatusCurrent
	case len(blockers) > 0:
		return StatusBlocked
	default:
		return StatusUpcoming
	}
}

func acclimationAdvisory(snap *Snapshot) string {
	for _, s := range snap.Acclimations {
		if s.Status == domain.AcclimationCancelled {
			continue
		}
		if !s.ReadingsInRange() {
			return "site readings outside material envelope for " + s.MaterialName
		}
	}
	return ""
}
