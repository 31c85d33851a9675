package formatter

import (
	"testing"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/phase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRenderVariance(t *testing.T) {
	tests := []struct {
		name string
		days *int
		want string
	}{
		{"no baseline renders dash not zero", nil, "—"},
		{"behind schedule", intPtr(3), "+3d"},
		{"ahead of schedule", intPtr(-2), "-2d"},
		{"exactly on baseline", intPtr(0), "on time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, RenderVariance(tt.days), tt.want)
		})
	}
}

func TestRenderVariance_NilIsNotOnTime(t *testing.T) {
	assert.NotContains(t, RenderVariance(nil), "on time")
}

func TestRenderTimeline(t *testing.T) {
	cfg, ok := domain.ConfigFor(domain.PhaseInstall)
	require.True(t, ok)

	views := []phase.PhaseView{
		{
			Phase:  domain.PhaseInstall,
			Config: cfg,
			Status: phase.StatusBlocked,
			Blockers: []domain.ProjectBlocker{
				{Reason: "material delayed: red oak"},
			},
			Advisory: "2 readings outside envelope",
		},
	}

	out := RenderTimeline(views)
	assert.Contains(t, out, cfg.Label)
	assert.Contains(t, out, "⊘")
	assert.Contains(t, out, "material delayed: red oak")
	assert.Contains(t, out, "⚠ 2 readings outside envelope")
	assert.Contains(t, out, "BLOCKED")
}

func TestRenderScheduleTable_Empty(t *testing.T) {
	out := RenderScheduleTable(nil)
	assert.Contains(t, out, "No schedule phases.")
}

func TestRenderScheduleTable(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	views := []phase.ScheduleView{
		{
			SchedulePhase: domain.SchedulePhase{
				ID:        "a",
				Name:      "Install main floor",
				Phase:     domain.PhaseInstall,
				Status:    domain.ScheduleInProgress,
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 4),
				Progress:  50,
			},
			VarianceDays:   intPtr(2),
			OnCriticalPath: true,
		},
		{
			SchedulePhase: domain.SchedulePhase{
				ID:        "b",
				Name:      "Punch walkthrough",
				Phase:     domain.PhasePunch,
				Status:    domain.SchedulePending,
				StartDate: start.AddDate(0, 0, 5),
				EndDate:   start.AddDate(0, 0, 6),
			},
			SlackDays: 3,
		},
	}

	out := RenderScheduleTable(views)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "VARIANCE")
	assert.Contains(t, out, "Install main floor")
	assert.Contains(t, out, "+2d")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, "3d slack")
	assert.Contains(t, out, "2026-06-01 → 2026-06-05")
}

func TestRenderGantt(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	views := []phase.ScheduleView{
		{
			SchedulePhase: domain.SchedulePhase{
				ID: "a", Name: "Demo", Phase: domain.PhaseDemo,
				StartDate: start, EndDate: start.AddDate(0, 0, 2),
			},
			OnCriticalPath: true,
		},
		{
			SchedulePhase: domain.SchedulePhase{
				ID: "b", Name: "Install", Phase: domain.PhaseInstall,
				StartDate: start.AddDate(0, 0, 2), EndDate: start.AddDate(0, 0, 4),
			},
		},
	}
	bars := []phase.Bar{
		{PhaseID: "a", Offset: 0, Width: 0.5},
		{PhaseID: "b", Offset: 0.5, Width: 0.5},
	}

	out := RenderGantt(views, bars, 20)
	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "Install")
	assert.Contains(t, out, "▇")
}

func TestRenderGantt_Empty(t *testing.T) {
	assert.Empty(t, RenderGantt(nil, nil, 40))
}

func TestRenderGantt_SkipsUnknownBars(t *testing.T) {
	bars := []phase.Bar{{PhaseID: "missing", Offset: 0, Width: 1}}
	assert.Empty(t, RenderGantt(nil, bars, 40))
}
