package domain

import "time"

// PunchItem is a defect or leftover task recorded during the walkthrough.
// The punch phase cannot complete while any item remains open.
type PunchItem struct {
	ID         string
	ProjectID  string
	Title      string
	Room       string
	Severity   PunchSeverity
	Status     PunchStatus
	AssignedTo string
	CreatedAt  time.Time
	ClosedAt   *time.Time
	UpdatedAt  time.Time
}

// Open reports whether the item still needs work.
func (pi *PunchItem) Open() bool {
	return pi.Status != PunchCompleted
}
