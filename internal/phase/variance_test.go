package phase

import (
	"testing"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarianceDays_LateIsPositive(t *testing.T) {
	baseEnd := day(10)
	actual := day(13)
	sp := domain.SchedulePhase{BaselineEnd: &baseEnd, ActualEnd: &actual}

	v := VarianceDays(sp, testNow)
	require.NotNil(t, v)
	assert.Equal(t, 3, *v)
}

func TestVarianceDays_EarlyIsNegative(t *testing.T) {
	baseEnd := day(10)
	actual := day(8)
	sp := domain.SchedulePhase{BaselineEnd: &baseEnd, ActualEnd: &actual}

	v := VarianceDays(sp, testNow)
	require.NotNil(t, v)
	assert.Equal(t, -2, *v)
}

func TestVarianceDays_UnfinishedPhaseMeasuresAgainstNow(t *testing.T) {
	baseEnd := day(10)
	sp := domain.SchedulePhase{BaselineEnd: &baseEnd}

	v := VarianceDays(sp, day(15))
	require.NotNil(t, v)
	assert.Equal(t, 5, *v, "still running five days past baseline")
}

func TestVarianceDays_OnSchedule(t *testing.T) {
	baseEnd := day(10)
	actual := day(10)
	sp := domain.SchedulePhase{BaselineEnd: &baseEnd, ActualEnd: &actual}

	v := VarianceDays(sp, testNow)
	require.NotNil(t, v)
	assert.Zero(t, *v)
}

func TestVarianceDays_NoBaselineIsNilNotZero(t *testing.T) {
	sp := domain.SchedulePhase{}
	assert.Nil(t, VarianceDays(sp, testNow))
}
