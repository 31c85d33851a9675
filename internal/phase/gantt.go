package phase

import "github.com/dmoreno/groundwork/internal/domain"

// Bar is the display geometry for one schedule phase: left offset and width
// as fractions of the overall date span. Pure layout math, no scheduling
// decisions.
type Bar struct {
	PhaseID string
	Offset  float64 // 0..1 fraction of span
	Width   float64 // 0..1 fraction of span
}

// GanttLayout computes bar geometry across the [earliest start, latest end]
// bounds of all phases. A degenerate span (single instant, or an empty
// collection) yields full-width bars so the display never divides by zero.
func GanttLayout(phases []domain.SchedulePhase) []Bar {
	if len(phases) == 0 {
		return nil
	}

	min, max := phases[0].StartDate, phases[0].EndDate
	for _, sp := range phases[1:] {
		if sp.StartDate.Before(min) {
			min = sp.StartDate
		}
		if sp.EndDate.After(max) {
			max = sp.EndDate
		}
	}

	span := max.Sub(min)
	bars := make([]Bar, 0, len(phases))
	for _, sp := range phases {
		if span <= 0 {
			bars = append(bars, Bar{PhaseID: sp.ID, Offset: 0, Width: 1})
			continue
		}
		offset := float64(sp.StartDate.Sub(min)) / float64(span)
		width := float64(sp.EndDate.Sub(sp.StartDate)) / float64(span)
		if width < 0 {
			width = 0
		}
		bars = append(bars, Bar{PhaseID: sp.ID, Offset: offset, Width: width})
	}
	return bars
}
