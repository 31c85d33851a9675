package formatter

import (
	"fmt"
	"strings"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/phase"
)

// RenderTimeline renders the seven canonical phases as a vertical list with
// status markers, blockers indented under their phase, and advisories dimmed.
func RenderTimeline(views []phase.PhaseView) string {
	var b strings.Builder
	for _, v := range views {
		label := v.Config.Label
		if label == "" {
			label = string(v.Phase)
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			v.Config.Icon,
			StatusStyle(v.Status).Render(fmt.Sprintf("%-14s", label)),
			StatusIndicator(v.Status)))
		for _, bl := range v.Blockers {
			b.WriteString(fmt.Sprintf("     %s %s\n",
				StyleRed.Render("⊘"), bl.Reason))
		}
		if v.Advisory != "" {
			b.WriteString(fmt.Sprintf("     %s\n", Dim("⚠ "+v.Advisory)))
		}
	}
	return b.String()
}

// RenderScheduleTable renders the derived schedule projection: one row per
// schedule phase with variance and critical-path columns.
func RenderScheduleTable(views []phase.ScheduleView) string {
	if len(views) == 0 {
		return Dim("No schedule phases.") + "\n"
	}
	headers := []string{"NAME", "PHASE", "STATUS", "WINDOW", "PROGRESS", "VARIANCE", "CRITICAL"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		sp := v.SchedulePhase
		window := fmt.Sprintf("%s → %s", ShortDate(sp.StartDate), ShortDate(sp.EndDate))
		critical := ""
		if v.OnCriticalPath {
			critical = StyleRed.Render("◆")
		} else if v.SlackDays > 0 {
			critical = Dim(fmt.Sprintf("%dd slack", v.SlackDays))
		}
		rows = append(rows, []string{
			sp.Name,
			string(sp.Phase),
			string(sp.Status),
			window,
			RenderProgress(float64(sp.Progress)/100, 10),
			RenderVariance(v.VarianceDays),
			critical,
		})
	}
	return RenderTable(headers, rows)
}

// RenderVariance formats schedule variance in days. Nil means the phase has
// no baseline, which renders as a dash rather than zero.
func RenderVariance(days *int) string {
	if days == nil {
		return Dim("—")
	}
	switch {
	case *days > 0:
		return StyleRed.Render(fmt.Sprintf("+%dd", *days))
	case *days < 0:
		return StyleGreen.Render(fmt.Sprintf("%dd", *days))
	default:
		return StyleGreen.Render("on time")
	}
}

// RenderGantt renders schedule phases as horizontal bars scaled to the given
// character width.
func RenderGantt(views []phase.ScheduleView, bars []phase.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	byID := make(map[string]phase.ScheduleView, len(views))
	nameWidth := 0
	for _, v := range views {
		byID[v.SchedulePhase.ID] = v
		if n := len(v.SchedulePhase.Name); n > nameWidth {
			nameWidth = n
		}
	}

	var b strings.Builder
	for _, bar := range bars {
		v, ok := byID[bar.PhaseID]
		if !ok {
			continue
		}
		offset := int(bar.Offset * float64(width))
		length := int(bar.Width * float64(width))
		if length < 1 {
			length = 1
		}
		if offset+length > width {
			length = width - offset
		}

		style := StyleBlue
		if v.OnCriticalPath {
			style = StyleRed
		}
		if v.SchedulePhase.Status == domain.ScheduleCompleted {
			style = StyleGreen
		}

		line := strings.Repeat(" ", offset) +
			style.Render(strings.Repeat("▇", length)) +
			strings.Repeat(" ", width-offset-length)
		b.WriteString(fmt.Sprintf("%-*s  %s\n", nameWidth, v.SchedulePhase.Name, line))
	}
	return b.String()
}
