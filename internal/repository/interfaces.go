package repository

import (
	"context"

	"github.com/dmoreno/groundwork/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByJobID(ctx context.Context, jobID string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SchedulePhaseRepo interface {
	Create(ctx context.Context, sp *domain.SchedulePhase) error
	GetByID(ctx context.Context, id string) (*domain.SchedulePhase, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.SchedulePhase, error)
	Update(ctx context.Context, sp *domain.SchedulePhase) error
	Delete(ctx context.Context, id string) error
}

type BlockerRepo interface {
	Create(ctx context.Context, b *domain.ProjectBlocker) error
	GetByID(ctx context.Context, id string) (*domain.ProjectBlocker, error)
	// ListActive returns unresolved blockers for a project in creation order.
	ListActive(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error)
	ListAll(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error)
	// FindActiveBySource locates the standing blocker a fact source created
	// for one of its records, so the source can resolve it.
	FindActiveBySource(ctx context.Context, projectID string, source domain.BlockerSource, sourceRef string) (*domain.ProjectBlocker, error)
	Resolve(ctx context.Context, id string) error
}

type AcclimationRepo interface {
	Create(ctx context.Context, s *domain.AcclimationSession) error
	GetByID(ctx context.Context, id string) (*domain.AcclimationSession, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.AcclimationSession, error)
	Update(ctx context.Context, s *domain.AcclimationSession) error
	AddReading(ctx context.Context, sessionID string, r domain.EnvReading) error
}

type PunchRepo interface {
	Create(ctx context.Context, pi *domain.PunchItem) error
	GetByID(ctx context.Context, id string) (*domain.PunchItem, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.PunchItem, error)
	CountOpen(ctx context.Context, projectID string) (int, error)
	CountOpenCritical(ctx context.Context, projectID string) (int, error)
	Update(ctx context.Context, pi *domain.PunchItem) error
	Delete(ctx context.Context, id string) error
}

type DeliveryRepo interface {
	Create(ctx context.Context, d *domain.MaterialDelivery) error
	GetByID(ctx context.Context, id string) (*domain.MaterialDelivery, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.MaterialDelivery, error)
	Update(ctx context.Context, d *domain.MaterialDelivery) error
}

type DailyLogRepo interface {
	Create(ctx context.Context, l *domain.DailyLog) error
	GetByID(ctx context.Context, id string) (*domain.DailyLog, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.DailyLog, error)
	Delete(ctx context.Context, id string) error
}
