package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/google/uuid"
)

var testJobIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithTargetDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.TargetDate = &d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithJobID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.JobID = id
	}
}

func WithProjectProgress(pct int) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = pct
	}
}

func defaultJobID(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testJobIDCounter.Add(1)
	return fmt.Sprintf("%s-%03d", string(letters), n)
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		JobID:       defaultJobID(name),
		Name:        name,
		Client:      "Test Client",
		SiteAddress: "1 Test St",
		StartDate:   now.AddDate(0, -1, 0),
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SchedulePhase options
type SchedulePhaseOption func(*domain.SchedulePhase)

func WithPhaseStatus(s domain.SchedulePhaseStatus) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.Status = s
	}
}

func WithPhaseProgress(pct int) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.Progress = pct
	}
}

func WithDependencies(ids ...string) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.Dependencies = ids
	}
}

func WithBaseline(start, end time.Time) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.BaselineStart = &start
		sp.BaselineEnd = &end
	}
}

func WithActuals(start, end time.Time) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.ActualStart = &start
		sp.ActualEnd = &end
	}
}

func WithWindow(start, end time.Time) SchedulePhaseOption {
	return func(sp *domain.SchedulePhase) {
		sp.StartDate = start
		sp.EndDate = end
	}
}

func NewTestSchedulePhase(projectID string, phase domain.Phase, opts ...SchedulePhaseOption) *domain.SchedulePhase {
	now := time.Now().UTC()
	start := now.Truncate(24 * time.Hour)
	sp := &domain.SchedulePhase{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      string(phase),
		Phase:     phase,
		Status:    domain.SchedulePending,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

// Blocker options
type BlockerOption func(*domain.ProjectBlocker)

func WithBlockerPhases(phases ...domain.Phase) BlockerOption {
	return func(b *domain.ProjectBlocker) {
		b.Phases = phases
	}
}

func WithBlockerSource(source domain.BlockerSource, ref string) BlockerOption {
	return func(b *domain.ProjectBlocker) {
		b.Source = source
		b.SourceRef = ref
	}
}

func Resolved(at time.Time) BlockerOption {
	return func(b *domain.ProjectBlocker) {
		b.ResolvedAt = &at
	}
}

func NewTestBlocker(projectID, reason string, opts ...BlockerOption) *domain.ProjectBlocker {
	b := &domain.ProjectBlocker{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Reason:    reason,
		Source:    domain.BlockerManual,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AcclimationSession options
type SessionOption func(*domain.AcclimationSession)

func WithSessionStatus(s domain.AcclimationStatus) SessionOption {
	return func(sess *domain.AcclimationSession) {
		sess.Status = s
	}
}

func WithSessionStart(t time.Time) SessionOption {
	return func(sess *domain.AcclimationSession) {
		sess.StartTime = t
	}
}

func WithRequiredHours(h int) SessionOption {
	return func(sess *domain.AcclimationSession) {
		sess.RequiredHours = h
	}
}

func WithReadings(readings ...domain.EnvReading) SessionOption {
	return func(sess *domain.AcclimationSession) {
		sess.Readings = readings
	}
}

func NewTestSession(projectID, material string, opts ...SessionOption) *domain.AcclimationSession {
	now := time.Now().UTC()
	sess := &domain.AcclimationSession{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		MaterialName:   material,
		RequiredHours:  48,
		StartTime:      now,
		Status:         domain.AcclimationInProgress,
		MinTempF:       60,
		MaxTempF:       80,
		MinHumidityPct: 30,
		MaxHumidityPct: 55,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(sess)
	}
	return sess
}

// PunchItem options
type PunchOption func(*domain.PunchItem)

func WithSeverity(s domain.PunchSeverity) PunchOption {
	return func(pi *domain.PunchItem) {
		pi.Severity = s
	}
}

func WithPunchStatus(s domain.PunchStatus) PunchOption {
	return func(pi *domain.PunchItem) {
		pi.Status = s
	}
}

func NewTestPunchItem(projectID, title string, opts ...PunchOption) *domain.PunchItem {
	now := time.Now().UTC()
	pi := &domain.PunchItem{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Room:      "living room",
		Severity:  domain.SeverityMinor,
		Status:    domain.PunchOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(pi)
	}
	return pi
}

// MaterialDelivery options
type DeliveryOption func(*domain.MaterialDelivery)

func WithDeliveryStatus(s domain.DeliveryStatus) DeliveryOption {
	return func(d *domain.MaterialDelivery) {
		d.Status = s
	}
}

func WithExpectedDate(t time.Time) DeliveryOption {
	return func(d *domain.MaterialDelivery) {
		d.ExpectedDate = t
	}
}

func WithDeliveredAt(t time.Time) DeliveryOption {
	return func(d *domain.MaterialDelivery) {
		d.DeliveredAt = &t
	}
}

func RequiresAcclimation() DeliveryOption {
	return func(d *domain.MaterialDelivery) {
		d.RequiresAcclimation = true
	}
}

func NewTestDelivery(projectID, material string, opts ...DeliveryOption) *domain.MaterialDelivery {
	now := time.Now().UTC()
	d := &domain.MaterialDelivery{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		MaterialName: material,
		Quantity:     500,
		Unit:         "sqft",
		Status:       domain.DeliveryOrdered,
		ExpectedDate: now.AddDate(0, 0, 7).Truncate(24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DailyLog options
type LogOption func(*domain.DailyLog)

func WithLogDate(t time.Time) LogOption {
	return func(l *domain.DailyLog) {
		l.Date = t
	}
}

func WithCrew(names ...string) LogOption {
	return func(l *domain.DailyLog) {
		l.Crew = names
	}
}

func NewTestDailyLog(projectID string, phase domain.Phase, opts ...LogOption) *domain.DailyLog {
	now := time.Now().UTC()
	l := &domain.DailyLog{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		Date:          now.Truncate(24 * time.Hour),
		Phase:         phase,
		Crew:          []string{"M. Ortiz"},
		HoursWorked:   8,
		WorkCompleted: "test work",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
