package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/google/uuid"
)

type blockerService struct {
	blockers repository.BlockerRepo
}

// NewBlockerService creates the service for manually raised blockers.
// Delivery, acclimation, and punch blockers are owned by their fact sources
// and should not be added through here.
func NewBlockerService(blockers repository.BlockerRepo) BlockerService {
	return &blockerService{blockers: blockers}
}

func (s *blockerService) Add(ctx context.Context, b *domain.ProjectBlocker) error {
	if b.Reason == "" {
		return fmt.Errorf("blocker reason is required")
	}
	for _, p := range b.Phases {
		if _, err := domain.ParsePhase(string(p)); err != nil {
			return err
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.Source = domain.BlockerManual
	b.CreatedAt = time.Now().UTC()
	b.ResolvedAt = nil
	return s.blockers.Create(ctx, b)
}

func (s *blockerService) Resolve(ctx context.Context, id string) error {
	b, err := s.blockers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Source != domain.BlockerManual {
		return fmt.Errorf("blocker %s is owned by its %s source; resolve the underlying record instead", id, b.Source)
	}
	return s.blockers.Resolve(ctx, id)
}

func (s *blockerService) ListActive(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error) {
	return s.blockers.ListActive(ctx, projectID)
}

func (s *blockerService) ListAll(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error) {
	return s.blockers.ListAll(ctx, projectID)
}
