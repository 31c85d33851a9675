package domain

import "time"

// DailyLog is a field crew's record of a day's work on a job. Logs are the
// work-log evidence the phase engine consults for demo and prep completion
// when no schedule phases exist.
type DailyLog struct {
	ID            string
	ProjectID     string
	Date          time.Time
	Phase         Phase
	Crew          []string
	HoursWorked   float64
	WorkCompleted string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
