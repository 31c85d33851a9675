package phase

import (
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
)

// ScheduleView is the read-only derived companion of a SchedulePhase.
// Authored fields stay on the domain record; everything here is recomputed
// from the full collection on each call, so derived values can never go
// stale after an authored edit.
type ScheduleView struct {
	SchedulePhase domain.SchedulePhase
	// VarianceDays is nil when the phase has no baseline.
	VarianceDays   *int
	OnCriticalPath bool
	SlackDays      int
}

// DeriveSchedule computes the derived projection for every schedule phase:
// variance against baseline and critical-path membership via the dependency
// graph. Views come back in input order; warnings report dropped dangling
// dependency references.
func DeriveSchedule(phases []domain.SchedulePhase, now time.Time) ([]ScheduleView, []Warning) {
	g, warnings := BuildGraph(phases)
	path := CriticalPath(g)

	views := make([]ScheduleView, 0, len(phases))
	for _, sp := range phases {
		views = append(views, ScheduleView{
			SchedulePhase:  sp,
			VarianceDays:   VarianceDays(sp, now),
			OnCriticalPath: path.Critical[sp.ID],
			SlackDays:      path.SlackDays[sp.ID],
		})
	}
	return views, warnings
}
