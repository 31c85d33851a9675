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

type punchService struct {
	punch repository.PunchRepo
	uow   db.UnitOfWork
}

// NewPunchService creates the punch list service. Critical items carry a
// blocker alongside them: the blocker is created and resolved here, in the
// same transaction as the item write, never by the timeline engine.
func NewPunchService(punch repository.PunchRepo, uow db.UnitOfWork) PunchService {
	return &punchService{punch: punch, uow: uow}
}

func (s *punchService) Create(ctx context.Context, pi *domain.PunchItem) error {
	if pi.Title == "" {
		return fmt.Errorf("punch item title is required")
	}
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	pi.CreatedAt = now
	pi.UpdatedAt = now
	if pi.Status == "" {
		pi.Status = domain.PunchOpen
	}
	if pi.Severity == "" {
		pi.Severity = domain.SeverityMinor
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPunch := repository.NewSQLitePunchRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		if err := txPunch.Create(ctx, pi); err != nil {
			return err
		}
		if pi.Severity != domain.SeverityCritical || !pi.Open() {
			return nil
		}
		return txBlockers.Create(ctx, &domain.ProjectBlocker{
			ID:        uuid.New().String(),
			ProjectID: pi.ProjectID,
			Phases:    []domain.Phase{domain.PhasePunch},
			Reason:    fmt.Sprintf("critical punch item open: %s", pi.Title),
			Source:    domain.BlockerFromPunch,
			SourceRef: pi.ID,
			CreatedAt: now,
		})
	})
}

func (s *punchService) GetByID(ctx context.Context, id string) (*domain.PunchItem, error) {
	return s.punch.GetByID(ctx, id)
}

func (s *punchService) ListByProject(ctx context.Context, projectID string) ([]domain.PunchItem, error) {
	return s.punch.ListByProject(ctx, projectID)
}

func (s *punchService) Close(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPunch := repository.NewSQLitePunchRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		pi, err := txPunch.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !pi.Open() {
			return fmt.Errorf("punch item already closed: %s", id)
		}

		now := time.Now().UTC()
		pi.Status = domain.PunchCompleted
		pi.ClosedAt = &now
		pi.UpdatedAt = now
		if err := txPunch.Update(ctx, pi); err != nil {
			return err
		}

		return s.resolveBlockerIfCleared(ctx, txPunch, txBlockers, pi)
	})
}

func (s *punchService) Reopen(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPunch := repository.NewSQLitePunchRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		pi, err := txPunch.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pi.Open() {
			return fmt.Errorf("punch item is not closed: %s", id)
		}

		now := time.Now().UTC()
		pi.Status = domain.PunchOpen
		pi.ClosedAt = nil
		pi.UpdatedAt = now
		if err := txPunch.Update(ctx, pi); err != nil {
			return err
		}
		if pi.Severity != domain.SeverityCritical {
			return nil
		}

		// Reinstate the blocker unless one is already standing.
		existing, err := txBlockers.FindActiveBySource(ctx, pi.ProjectID, domain.BlockerFromPunch, pi.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		return txBlockers.Create(ctx, &domain.ProjectBlocker{
			ID:        uuid.New().String(),
			ProjectID: pi.ProjectID,
			Phases:    []domain.Phase{domain.PhasePunch},
			Reason:    fmt.Sprintf("critical punch item open: %s", pi.Title),
			Source:    domain.BlockerFromPunch,
			SourceRef: pi.ID,
			CreatedAt: now,
		})
	})
}

func (s *punchService) Delete(ctx context.Context, id string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPunch := repository.NewSQLitePunchRepo(tx)
		txBlockers := repository.NewSQLiteBlockerRepo(tx)

		pi, err := txPunch.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txPunch.Delete(ctx, id); err != nil {
			return err
		}
		return s.resolveBlockerIfCleared(ctx, txPunch, txBlockers, pi)
	})
}

// resolveBlockerIfCleared resolves the item's punch blocker once no open
// critical item remains on the project.
func (s *punchService) resolveBlockerIfCleared(ctx context.Context, txPunch repository.PunchRepo, txBlockers repository.BlockerRepo, pi *domain.PunchItem) error {
	if pi.Severity != domain.SeverityCritical {
		return nil
	}
	b, err := txBlockers.FindActiveBySource(ctx, pi.ProjectID, domain.BlockerFromPunch, pi.ID)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}
	return txBlockers.Resolve(ctx, b.ID)
}
