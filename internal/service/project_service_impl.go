package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmoreno/groundwork/internal/domain"
	"github.com/dmoreno/groundwork/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.JobID = strings.ToUpper(p.JobID)
	if err := p.ValidateJobID(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if p.StartDate.IsZero() {
		p.StartDate = now
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Resolve looks a project up by job ID first, then by full UUID. Job IDs are
// what crews type, so they win.
func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	if ref == "" {
		return nil, fmt.Errorf("project reference is required")
	}
	if p, err := s.projects.GetByJobID(ctx, ref); err == nil {
		return p, nil
	}
	p, err := s.projects.GetByID(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("no project with job ID or ID %q", ref)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.ValidateJobID(); err != nil {
		return err
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", p.Progress)
	}
	p.JobID = strings.ToUpper(p.JobID)
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	return s.projects.Archive(ctx, id)
}

func (s *projectService) Unarchive(ctx context.Context, id string) error {
	return s.projects.Unarchive(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
