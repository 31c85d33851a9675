package domain

import "time"

// SchedulePhase is an explicit, plannable unit of work mapped to a canonical
// Phase. Multiple schedule phases can map to the same canonical phase.
//
// Variance and critical-path membership are intentionally NOT fields here:
// they are derived on demand by the phase engine into a read-only projection
// so authored edits can never leave stale derived values behind.
type SchedulePhase struct {
	ID        string
	ProjectID string
	Name      string
	Phase     Phase
	Status    SchedulePhaseStatus
	Progress  int // 0-100

	// Working plan.
	StartDate time.Time
	EndDate   time.Time

	// Baseline plan, fixed at project setup. Nil means no baseline exists
	// and variance is undefined (distinct from zero variance).
	BaselineStart *time.Time
	BaselineEnd   *time.Time

	// Actuals, stamped as work happens.
	ActualStart *time.Time
	ActualEnd   *time.Time

	// Dependencies lists the IDs of schedule phases that must complete
	// before this one may start. Unresolvable IDs are dropped by the engine
	// and surfaced as data-quality warnings.
	Dependencies []string

	BlockingReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationDays returns the planned working duration in whole days, never
// less than 1 for a well-formed row.
func (sp *SchedulePhase) DurationDays() int {
	d := int(sp.EndDate.Sub(sp.StartDate).Hours() / 24)
	if d < 1 {
		return 1
	}
	return d
}
