package phase

import (
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
)

// IsComplete reports whether a canonical phase is finished. Each phase has
// its own completion criterion over the snapshot's fact records:
//
//   - demo/prep: schedule rows for the phase are authoritative when present
//     (all must reach 100% progress); otherwise recorded daily-log evidence
//     plus the project's coarse progress decide.
//   - acclimation: every live session must have finished its required hours.
//   - install: every install schedule row must be completed.
//   - cure: the configured cure time must have elapsed since install ended.
//   - punch: no punch item may remain open.
//   - closeout: overall project progress must reach 100.
//
// A phase whose criterion has no data to consult is incomplete, never
// vacuously complete. Non-canonical phases are always incomplete.
func IsComplete(snap *Snapshot, p domain.Phase) bool {
	switch p {
	case domain.PhaseDemo, domain.PhasePrep:
		return workPhaseComplete(snap, p)
	case domain.PhaseAcclimation:
		return acclimationComplete(snap)
	case domain.PhaseInstall:
		return installComplete(snap)
	case domain.PhaseCure:
		return cureComplete(snap)
	case domain.PhasePunch:
		return punchComplete(snap)
	case domain.PhaseCloseout:
		return snap.Project.Progress >= 100
	default:
		return false
	}
}

func workPhaseComplete(snap *Snapshot, p domain.Phase) bool {
	rows := snap.schedulesFor(p)
	if len(rows) > 0 {
		for _, sp := range rows {
			if sp.Progress < 100 {
				return false
			}
		}
		return true
	}
	// No schedule rows: fall back to work-log evidence plus the coarse
	// overall-progress heuristic.
	return snap.hasWorkLog(p) && snap.Project.Progress >= coarseThresholdPct(p)
}

// coarseThresholdPct is the cumulative share of estimated hours through the
// given phase, as a percentage. Used only when no schedule rows exist.
func coarseThresholdPct(p domain.Phase) int {
	idx := domain.PhaseIndex(p)
	if idx < 0 {
		return 100
	}
	total, through := 0, 0
	for i, ph := range domain.PhaseOrder {
		cfg, ok := domain.ConfigFor(ph)
		if !ok {
			continue
		}
		total += cfg.EstimatedHours
		if i <= idx {
			through += cfg.EstimatedHours
		}
	}
	if total == 0 {
		return 100
	}
	return through * 100 / total
}

// acclimationComplete requires every live (non-cancelled) session to have
// finished. With no live sessions the delivery list decides: a material that
// requires acclimation and has no session keeps the phase incomplete; a job
// with nothing to acclimate passes through.
func acclimationComplete(snap *Snapshot) bool {
	live := 0
	for _, s := range snap.Acclimations {
		if s.Status == domain.AcclimationCancelled {
			continue
		}
		live++
		if !s.IsComplete(snap.Now) {
			return false
		}
	}
	if live > 0 {
		return true
	}
	for _, d := range snap.Deliveries {
		if d.RequiresAcclimation {
			return false
		}
	}
	return true
}

func installComplete(snap *Snapshot) bool {
	rows := snap.schedulesFor(domain.PhaseInstall)
	if len(rows) == 0 {
		return false
	}
	for _, sp := range rows {
		if sp.Status != domain.ScheduleCompleted {
			return false
		}
	}
	return true
}

// cureComplete checks that the configured cure time has elapsed since the
// latest completed install row ended. Install must be complete first.
func cureComplete(snap *Snapshot) bool {
	if !installComplete(snap) {
		return false
	}
	cfg, ok := domain.ConfigFor(domain.PhaseCure)
	if !ok || cfg.CureHours <= 0 {
		return false
	}
	end, ok := installEnd(snap)
	if !ok {
		return false
	}
	return snap.Now.Sub(end) >= time.Duration(cfg.CureHours)*time.Hour
}

// installEnd returns the latest end timestamp across completed install rows,
// preferring stamped actuals over the working plan.
func installEnd(snap *Snapshot) (time.Time, bool) {
	var end time.Time
	found := false
	for _, sp := range snap.schedulesFor(domain.PhaseInstall) {
		if sp.Status != domain.ScheduleCompleted {
			continue
		}
		t := sp.EndDate
		if sp.ActualEnd != nil {
			t = *sp.ActualEnd
		}
		if !found || t.After(end) {
			end = t
			found = true
		}
	}
	return end, found
}

func punchComplete(snap *Snapshot) bool {
	for _, pi := range snap.PunchItems {
		if pi.Open() {
			return false
		}
	}
	return true
}
