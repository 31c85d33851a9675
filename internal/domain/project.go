package domain

import (
	"fmt"
	"regexp"
	"time"
)

var jobIDPattern = regexp.MustCompile(`^[A-Z]{2,6}-?[0-9]{2,5}$`)

// Project is a flooring job. The phase engine reads it together with the
// job's fact records (schedule phases, acclimation sessions, punch items,
// daily logs) and never writes it.
type Project struct {
	ID          string
	JobID       string // short human code, e.g. KITCH-042
	Name        string
	Client      string
	SiteAddress string
	StartDate   time.Time
	TargetDate  *time.Time
	// Progress is the overall completion percentage reported by the field
	// team; 100 gates closeout.
	Progress   int
	Status     ProjectStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidateJobID checks that JobID is non-empty and matches the required
// format: 2-6 uppercase letters, an optional dash, then 2-5 digits
// (e.g. KITCH-042, FLR101).
func (p *Project) ValidateJobID() error {
	if p.JobID == "" {
		return fmt.Errorf("job ID is required (use --job flag)")
	}
	if !jobIDPattern.MatchString(p.JobID) {
		return fmt.Errorf("job ID %q must be 2-6 uppercase letters, an optional dash, then 2-5 digits (e.g. KITCH-042)", p.JobID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers JobID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.JobID != "" {
		return p.JobID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
