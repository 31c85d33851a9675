package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/google/uuid"
)

type logService struct {
	logs repository.DailyLogRepo
}

func NewLogService(logs repository.DailyLogRepo) LogService {
	return &logService{logs: logs}
}

func (s *logService) Create(ctx context.Context, l *domain.DailyLog) error {
	if _, err := domain.ParsePhase(string(l.Phase)); err != nil {
		return err
	}
	if l.HoursWorked < 0 {
		return fmt.Errorf("hours worked cannot be negative, got %v", l.HoursWorked)
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if l.Date.IsZero() {
		l.Date = now.Truncate(24 * time.Hour)
	}
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.logs.Create(ctx, l)
}

func (s *logService) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	return s.logs.GetByID(ctx, id)
}

func (s *logService) ListByProject(ctx context.Context, projectID string) ([]domain.DailyLog, error) {
	return s.logs.ListByProject(ctx, projectID)
}

func (s *logService) Delete(ctx context.Context, id string) error {
	return s.logs.Delete(ctx, id)
}
