package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcclimationSession_ElapsedHours(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := &AcclimationSession{StartTime: now.Add(-47 * time.Hour)}
	assert.Equal(t, 47, s.ElapsedHours(now))
}

func TestAcclimationSession_ElapsedHours_FutureStartClampsToZero(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := &AcclimationSession{StartTime: now.Add(2 * time.Hour)}
	assert.Equal(t, 0, s.ElapsedHours(now))
}

func TestAcclimationSession_IsComplete_ElapsedGatesCompletion(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := &AcclimationSession{
		RequiredHours: 48,
		StartTime:     now.Add(-47 * time.Hour),
		Status:        AcclimationInProgress,
	}
	assert.False(t, s.IsComplete(now), "47 of 48 required hours elapsed")

	// Two more hours pass.
	assert.True(t, s.IsComplete(now.Add(2*time.Hour)))
}

func TestAcclimationSession_IsComplete_ExplicitStatusWins(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := &AcclimationSession{
		RequiredHours: 48,
		StartTime:     now.Add(-1 * time.Hour),
		Status:        AcclimationComplete,
	}
	assert.True(t, s.IsComplete(now), "explicit complete status overrides the clock")
}

func TestAcclimationSession_IsComplete_CancelledNeverCompletes(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := &AcclimationSession{
		RequiredHours: 48,
		StartTime:     now.Add(-100 * time.Hour),
		Status:        AcclimationCancelled,
	}
	assert.False(t, s.IsComplete(now))
}

func TestAcclimationSession_ReadingsInRange(t *testing.T) {
	s := &AcclimationSession{
		MinTempF: 65, MaxTempF: 80,
		MinHumidityPct: 30, MaxHumidityPct: 50,
		Readings: []EnvReading{
			{TempF: 70, HumidityPct: 40},
			{TempF: 72, HumidityPct: 45},
		},
	}
	assert.True(t, s.ReadingsInRange())

	s.Readings = append(s.Readings, EnvReading{TempF: 85, HumidityPct: 40})
	assert.False(t, s.ReadingsInRange(), "out-of-range temperature flags the session")
}
