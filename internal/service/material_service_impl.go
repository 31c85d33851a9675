package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/google/uuid"
)

type materialService struct {
	deliveries  repository.DeliveryRepo
	acclimation repository.AcclimationRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

// NewMaterialService creates the material tracking service. Deliveries and
// acclimation sessions both own blockers: a delayed delivery blocks install,
// an unfinished acclimation session blocks the acclimation phase. Blockers
// are created and resolved here, in the same transaction as the fact write.
func NewMaterialService(
	deliveries repository.DeliveryRepo,
	acclimation repository.AcclimationRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) MaterialService {
	return &materialService{
		deliveries:  deliveries,
		acclimation: acclimation,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *materialService) AddDelivery(ctx context.Context, d *domain.MaterialDelivery) error {
	if d.MaterialName == "" {
		return fmt.Errorf("material name is required")
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Status == "" {
		d.Status = domain.DeliveryOrdered
	}
	return s.deliveries.Create(ctx, d)
}

func (s *materialService) GetDelivery(ctx context.Context, id string) (*domain.MaterialDelivery, error) {
	return s.deliveries.GetByID(ctx, id)
}

func (s *materialService) ListDeliveries(ctx context.Context, projectID string) ([]domain.MaterialDelivery, error) {
	return s.deliveries.ListByProject(ctx, projectID)
}

func (s *materialService) MarkDelayed(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeliveries := repository.NewSQLiteDeliveryRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		d, err := txDeliveries.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d.Status == domain.DeliveryDelivered {
			return fmt.Errorf("delivery already arrived: %s", id)
		}

		now := time.Now().UTC()
		d.Status = domain.DeliveryDelayed
		d.UpdatedAt = now
		if err := txDeliveries.Update(ctx, d); err != nil {
			return err
		}

		existing, err := txBlockers.FindActiveBySource(ctx, d.ProjectID, domain.BlockerFromDelivery, d.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		return txBlockers.Create(ctx, &domain.ProjectBlocker{
			ID:        uuid.New().String(),
			ProjectID: d.ProjectID,
			Phases:    []domain.Phase{domain.PhaseInstall},
			Reason:    fmt.Sprintf("material delayed: %s", d.MaterialName),
			Source:    domain.BlockerFromDelivery,
			SourceRef: d.ID,
			CreatedAt: now,
		})
	})
}

func (s *materialService) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDeliveries := repository.NewSQLiteDeliveryRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		d, err := txDeliveries.GetByID(ctx, id)
		if err != nil {
			return err
		}

		d.Status = domain.DeliveryDelivered
		d.DeliveredAt = &at
		d.UpdatedAt = time.Now().UTC()
		if err := txDeliveries.Update(ctx, d); err != nil {
			return err
		}

		b, err := txBlockers.FindActiveBySource(ctx, d.ProjectID, domain.BlockerFromDelivery, d.ID)
		if err != nil {
			return err
		}
		if b == nil {
			return nil
		}
		return txBlockers.Resolve(ctx, b.ID)
	})
}

func (s *materialService) StartAcclimation(ctx context.Context, sess *domain.AcclimationSession) error {
	if sess.MaterialName == "" {
		return fmt.Errorf("material name is required")
	}
	if sess.RequiredHours <= 0 {
		return fmt.Errorf("required hours must be positive, got %d", sess.RequiredHours)
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if sess.StartTime.IsZero() {
		sess.StartTime = now
	}
	sess.Status = domain.AcclimationInProgress
	sess.CreatedAt = now
	sess.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAcclimation := repository.NewSQLiteAcclimationRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		if err := txAcclimation.Create(ctx, sess); err != nil {
			return err
		}
		return txBlockers.Create(ctx, &domain.ProjectBlocker{
			ID:        uuid.New().String(),
			ProjectID: sess.ProjectID,
			Phases:    []domain.Phase{domain.PhaseAcclimation},
			Reason:    fmt.Sprintf("%s acclimating (%dh required)", sess.MaterialName, sess.RequiredHours),
			Source:    domain.BlockerFromAcclimation,
			SourceRef: sess.ID,
			CreatedAt: now,
		})
	})
}

func (s *materialService) GetSession(ctx context.Context, id string) (*domain.AcclimationSession, error) {
	return s.acclimation.GetByID(ctx, id)
}

func (s *materialService) ListSessions(ctx context.Context, projectID string) ([]domain.AcclimationSession, error) {
	return s.acclimation.ListByProject(ctx, projectID)
}

func (s *materialService) RecordReading(ctx context.Context, sessionID string, r domain.EnvReading) error {
	if r.At.IsZero() {
		r.At = time.Now().UTC()
	}
	return s.acclimation.AddReading(ctx, sessionID, r)
}

func (s *materialService) CompleteSession(ctx context.Context, id string) error {
	return s.finishSession(ctx, id, domain.AcclimationComplete)
}

func (s *materialService) CancelSession(ctx context.Context, id string) error {
	return s.finishSession(ctx, id, domain.AcclimationCancelled)
}

func (s *materialService) finishSession(ctx context.Context, id string, status domain.AcclimationStatus) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAcclimation := repository.NewSQLiteAcclimationRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		sess, err := txAcclimation.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sess.Status != domain.AcclimationInProgress {
			return fmt.Errorf("acclimation session is not in progress: %s", id)
		}

		sess.Status = status
		sess.UpdatedAt = time.Now().UTC()
		if err := txAcclimation.Update(ctx, sess); err != nil {
			return err
		}
		return resolveSessionBlocker(ctx, txBlockers, sess)
	})
}

// CompleteReadySessions marks every in-progress session whose elapsed time
// has reached its requirement as complete and resolves its blocker. Returns
// the number of sessions completed.
func (s *materialService) CompleteReadySessions(ctx context.Context, projectID string, now time.Time) (completed int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "complete-ready-sessions",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"project_id": projectID, "completed": completed},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAcclimation := repository.NewSQLiteAcclimationRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		sessions, err := txAcclimation.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		for i := range sessions {
			sess := &sessions[i]
			if sess.Status != domain.AcclimationInProgress || sess.ElapsedHours(now) < sess.RequiredHours {
				continue
			}
			sess.Status = domain.AcclimationComplete
			sess.UpdatedAt = time.Now().UTC()
			if err := txAcclimation.Update(ctx, sess); err != nil {
				return err
			}
			if err := resolveSessionBlocker(ctx, txBlockers, sess); err != nil {
				return err
			}
			completed++
		}
		return nil
	})
	if err != nil {
		completed = 0
	}
	return completed, err
}

func resolveSessionBlocker(ctx context.Context, txBlockers repository.BlockerRepo, sess *domain.AcclimationSession) error {
	b, err := txBlockers.FindActiveBySource(ctx, sess.ProjectID, domain.BlockerFromAcclimation, sess.ID)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}
	return txBlockers.Resolve(ctx, b.ID)
}
