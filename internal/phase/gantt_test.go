package phase

import (
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGanttLayout_FractionsOfSpan(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("a", 1, 6),  // first half
		sched("b", 6, 11), // second half
	}

	bars := GanttLayout(phases)
	require.Len(t, bars, 2)

	assert.InDelta(t, 0.0, bars[0].Offset, 1e-9)
	assert.InDelta(t, 0.5, bars[0].Width, 1e-9)
	assert.InDelta(t, 0.5, bars[1].Offset, 1e-9)
	assert.InDelta(t, 0.5, bars[1].Width, 1e-9)
}

func TestGanttLayout_BarsStayWithinUnitSpan(t *testing.T) {
	phases := []domain.SchedulePhase{
		sched("a", 1, 4),
		sched("b", 2, 9),
		sched("c", 8, 12),
	}

	for _, bar := range GanttLayout(phases) {
		assert.GreaterOrEqual(t, bar.Offset, 0.0)
		assert.LessOrEqual(t, bar.Offset+bar.Width, 1.0+1e-9, "bar %s overflows the span", bar.PhaseID)
	}
}

func TestGanttLayout_DegenerateSpan(t *testing.T) {
	phases := []domain.SchedulePhase{
		{ID: "a", StartDate: day(5), EndDate: day(5)},
	}

	bars := GanttLayout(phases)
	require.Len(t, bars, 1)
	assert.Zero(t, bars[0].Offset)
	assert.Equal(t, 1.0, bars[0].Width)
}

func TestGanttLayout_EmptyInput(t *testing.T) {
	assert.Nil(t, GanttLayout(nil))
}
