package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/google/uuid"
)

type scheduleService struct {
	schedule repository.SchedulePhaseRepo
}

func NewScheduleService(schedule repository.SchedulePhaseRepo) ScheduleService {
	return &scheduleService{schedule: schedule}
}

func (s *scheduleService) Create(ctx context.Context, sp *domain.SchedulePhase) error {
	if _, err := domain.ParsePhase(string(sp.Phase)); err != nil {
		return err
	}
	if sp.Name == "" {
		sp.Name = string(sp.Phase)
	}
	if sp.EndDate.Before(sp.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			sp.EndDate.Format("2006-01-02"), sp.StartDate.Format("2006-01-02"))
	}
	if err := s.validateDependencies(ctx, sp); err != nil {
		return err
	}
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	if sp.Status == "" {
		sp.Status = domain.SchedulePending
	}
	return s.schedule.Create(ctx, sp)
}

func (s *scheduleService) GetByID(ctx context.Context, id string) (*domain.SchedulePhase, error) {
	return s.schedule.GetByID(ctx, id)
}

func (s *scheduleService) ListByProject(ctx context.Context, projectID string) ([]domain.SchedulePhase, error) {
	return s.schedule.ListByProject(ctx, projectID)
}

func (s *scheduleService) Update(ctx context.Context, sp *domain.SchedulePhase) error {
	if err := s.validateDependencies(ctx, sp); err != nil {
		return err
	}
	sp.UpdatedAt = time.Now().UTC()
	return s.schedule.Update(ctx, sp)
}

// SetStatus updates status and progress together. Marking a phase completed
// stamps ActualEnd (and ActualStart if it was never recorded) so variance and
// cure timing have real anchors.
func (s *scheduleService) SetStatus(ctx context.Context, id string, status domain.SchedulePhaseStatus, progress int) error {
	if !domain.ValidSchedulePhaseStatuses[string(status)] {
		return fmt.Errorf("invalid schedule phase status %q", status)
	}
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", progress)
	}
	sp, err := s.schedule.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sp.Status = status
	sp.Progress = progress
	switch status {
	case domain.ScheduleInProgress:
		if sp.ActualStart == nil {
			sp.ActualStart = &now
		}
	case domain.ScheduleCompleted:
		sp.Progress = 100
		if sp.ActualStart == nil {
			sp.ActualStart = &now
		}
		if sp.ActualEnd == nil {
			sp.ActualEnd = &now
		}
	}
	sp.UpdatedAt = now
	return s.schedule.Update(ctx, sp)
}

func (s *scheduleService) AddDependency(ctx context.Context, id, dependsOnID string) error {
	if id == dependsOnID {
		return fmt.Errorf("a phase cannot depend on itself")
	}
	sp, err := s.schedule.GetByID(ctx, id)
	if err != nil {
		return err
	}
	dep, err := s.schedule.GetByID(ctx, dependsOnID)
	if err != nil {
		return fmt.Errorf("dependency target not found: %w", err)
	}
	if dep.ProjectID != sp.ProjectID {
		return fmt.Errorf("dependency target belongs to a different project")
	}
	for _, existing := range sp.Dependencies {
		if existing == dependsOnID {
			return nil
		}
	}
	sp.Dependencies = append(sp.Dependencies, dependsOnID)
	sp.UpdatedAt = time.Now().UTC()
	return s.schedule.Update(ctx, sp)
}

func (s *scheduleService) RemoveDependency(ctx context.Context, id, dependsOnID string) error {
	sp, err := s.schedule.GetByID(ctx, id)
	if err != nil {
		return err
	}
	kept := sp.Dependencies[:0]
	found := false
	for _, existing := range sp.Dependencies {
		if existing == dependsOnID {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return fmt.Errorf("phase %s does not depend on %s", id, dependsOnID)
	}
	sp.Dependencies = kept
	sp.UpdatedAt = time.Now().UTC()
	return s.schedule.Update(ctx, sp)
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	return s.schedule.Delete(ctx, id)
}

func (s *scheduleService) validateDependencies(ctx context.Context, sp *domain.SchedulePhase) error {
	for _, dep := range sp.Dependencies {
		if dep == sp.ID {
			return fmt.Errorf("a phase cannot depend on itself")
		}
		target, err := s.schedule.GetByID(ctx, dep)
		if err != nil {
			return fmt.Errorf("dependency %s not found: %w", dep, err)
		}
		if target.ProjectID != sp.ProjectID {
			return fmt.Errorf("dependency %s belongs to a different project", dep)
		}
	}
	return nil
}
