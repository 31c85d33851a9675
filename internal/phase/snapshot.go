// Package phase derives the state of a flooring job's construction timeline
// from a read-only snapshot of its facts. Every exported function is pure:
// no I/O, no mutation of inputs, total over missing or malformed data.
package phase

import (
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
)

// Snapshot is the immutable input to the engine: one project plus every fact
// record the completion rules consult. Callers assemble it fresh on each
// call; the engine never caches and never writes back.
type Snapshot struct {
	Project        domain.Project
	SchedulePhases []domain.SchedulePhase
	Acclimations   []domain.AcclimationSession
	PunchItems     []domain.PunchItem
	Deliveries     []domain.MaterialDelivery
	DailyLogs      []domain.DailyLog
	// Blockers holds the active blocker records in insertion order. Filter
	// results preserve that order.
	Blockers []domain.ProjectBlocker
	Now      time.Time
}

// schedulesFor returns the schedule phases mapped to a canonical phase, in
// input order.
func (s *Snapshot) schedulesFor(p domain.Phase) []domain.SchedulePhase {
	var out []domain.SchedulePhase
	for _, sp := range s.SchedulePhases {
		if sp.Phase == p {
			out = append(out, sp)
		}
	}
	return out
}

// hasWorkLog reports whether any daily log records work for the phase.
func (s *Snapshot) hasWorkLog(p domain.Phase) bool {
	for _, l := range s.DailyLogs {
		if l.Phase == p {
			return true
		}
	}
	return false
}
