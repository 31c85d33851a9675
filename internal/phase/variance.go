package phase

import (
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
)

// VarianceDays computes the signed whole-day difference between a schedule
// phase's baseline end and its actual end (or now, if still unfinished).
// Positive is late, negative is early, zero is on schedule. Returns nil when
// no baseline exists: "no baseline" is distinct from "on time" and must not
// be rendered as zero variance.
func VarianceDays(sp domain.SchedulePhase, now time.Time) *int {
	if sp.BaselineEnd == nil {
		return nil
	}
	end := now
	if sp.ActualEnd != nil {
		end = *sp.ActualEnd
	}
	days := int(end.Sub(*sp.BaselineEnd).Hours() / 24)
	return &days
}
