package service

import (
	"context"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/phase"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

// TimelineResult is everything a caller needs to render a job's timeline:
// the canonical phase views, the derived schedule projection, Gantt bars,
// and any data-quality warnings raised while building the dependency graph.
type TimelineResult struct {
	Project  *domain.Project
	Current  domain.Phase
	Phases   []phase.PhaseView
	Schedule []phase.ScheduleView
	Bars     []phase.Bar
	Warnings []phase.Warning
}

type TimelineService interface {
	GetTimeline(ctx context.Context, projectID string) (*TimelineResult, error)
}

type ScheduleService interface {
	Create(ctx context.Context, sp *domain.SchedulePhase) error
	GetByID(ctx context.Context, id string) (*domain.SchedulePhase, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.SchedulePhase, error)
	Update(ctx context.Context, sp *domain.SchedulePhase) error
	SetStatus(ctx context.Context, id string, status domain.SchedulePhaseStatus, progress int) error
	AddDependency(ctx context.Context, id, dependsOnID string) error
	RemoveDependency(ctx context.Context, id, dependsOnID string) error
	Delete(ctx context.Context, id string) error
}

type PunchService interface {
	Create(ctx context.Context, pi *domain.PunchItem) error
	GetByID(ctx context.Context, id string) (*domain.PunchItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.PunchItem, error)
	Close(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type MaterialService interface {
	AddDelivery(ctx context.Context, d *domain.MaterialDelivery) error
	GetDelivery(ctx context.Context, id string) (*domain.MaterialDelivery, error)
	ListDeliveries(ctx context.Context, projectID string) ([]domain.MaterialDelivery, error)
	MarkDelayed(ctx context.Context, id string) error
	MarkDelivered(ctx context.Context, id string, at time.Time) error

	StartAcclimation(ctx context.Context, s *domain.AcclimationSession) error
	GetSession(ctx context.Context, id string) (*domain.AcclimationSession, error)
	ListSessions(ctx context.Context, projectID string) ([]domain.AcclimationSession, error)
	RecordReading(ctx context.Context, sessionID string, r domain.EnvReading) error
	CompleteSession(ctx context.Context, id string) error
	CancelSession(ctx context.Context, id string) error
	CompleteReadySessions(ctx context.Context, projectID string, now time.Time) (int, error)
}

type LogService interface {
	Create(ctx context.Context, l *domain.DailyLog) error
	GetByID(ctx context.Context, id string) (*domain.DailyLog, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.DailyLog, error)
	Delete(ctx context.Context, id string) error
}

type BlockerService interface {
	Add(ctx context.Context, b *domain.ProjectBlocker) error
	Resolve(ctx context.Context, id string) error
	ListActive(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error)
	ListAll(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error)
}
