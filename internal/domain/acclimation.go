package domain

import "time"

// EnvReading is a timestamped site condition sample taken during acclimation.
type EnvReading struct {
	At          time.Time
	TempF       float64
	HumidityPct float64
}

// AcclimationSession tracks a material resting on site before installation.
// Completion is gated by elapsed time against RequiredHours; readings are
// compliance data and never gate completion on their own.
type AcclimationSession struct {
	ID            string
	ProjectID     string
	MaterialName  string
	RequiredHours int
	StartTime     time.Time
	Status        AcclimationStatus

	// Acceptable site condition envelope for this material.
	MinTempF       float64
	MaxTempF       float64
	MinHumidityPct float64
	MaxHumidityPct float64

	Readings []EnvReading

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ElapsedHours returns whole hours since StartTime, never negative.
func (s *AcclimationSession) ElapsedHours(now time.Time) int {
	h := int(now.Sub(s.StartTime).Hours())
	if h < 0 {
		return 0
	}
	return h
}

// IsComplete reports whether the session has finished acclimating: either it
// was explicitly marked complete, or it is still in progress and the elapsed
// time has reached the required hours. Cancelled sessions never complete.
func (s *AcclimationSession) IsComplete(now time.Time) bool {
	switch s.Status {
	case AcclimationComplete:
		return true
	case AcclimationInProgress:
		return s.ElapsedHours(now) >= s.RequiredHours
	default:
		return false
	}
}

// ReadingsInRange reports whether every recorded reading falls inside the
// session's temperature and humidity envelope. Advisory only: an out-of-range
// reading flags a compliance concern but does not block completion.
func (s *AcclimationSession) ReadingsInRange() bool {
	for _, r := range s.Readings {
		if r.TempF < s.MinTempF || r.TempF > s.MaxTempF {
			return false
		}
		if r.HumidityPct < s.MinHumidityPct || r.HumidityPct > s.MaxHumidityPct {
			return false
		}
	}
	return true
}
