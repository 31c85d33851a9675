package service

import (
	"context"
	"time"

	"github.com/dmoreno/groundwork/internal/phase"
	"github.com/dmoreno/groundwork/internal/repository"
)

type timelineService struct {
	projects    repository.ProjectRepo
	schedule    repository.SchedulePhaseRepo
	acclimation repository.AcclimationRepo
	punch       repository.PunchRepo
	deliveries  repository.DeliveryRepo
	logs        repository.DailyLogRepo
	blockers    repository.BlockerRepo
	observer    UseCaseObserver
}

func NewTimelineService(
	projects repository.ProjectRepo,
	schedule repository.SchedulePhaseRepo,
	acclimation repository.AcclimationRepo,
	punch repository.PunchRepo,
	deliveries repository.DeliveryRepo,
	logs repository.DailyLogRepo,
	blockers repository.BlockerRepo,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		projects:    projects,
		schedule:    schedule,
		acclimation: acclimation,
		punch:       punch,
		deliveries:  deliveries,
		logs:        logs,
		blockers:    blockers,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// GetTimeline rebuilds the full derived view of a job from its facts. The
// snapshot is assembled fresh on every call; nothing derived is persisted.
func (s *timelineService) GetTimeline(ctx context.Context, projectID string) (result *TimelineResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "get-timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	snap, err := s.buildSnapshot(ctx, projectID, startedAt)
	if err != nil {
		return nil, err
	}

	views, warnings := phase.DeriveSchedule(snap.SchedulePhases, snap.Now)
	result = &TimelineResult{
		Project:  &snap.Project,
		Current:  phase.Current(snap),
		Phases:   phase.Timeline(snap),
		Schedule: views,
		Bars:     phase.GanttLayout(snap.SchedulePhases),
		Warnings: warnings,
	}
	fields["warning_count"] = len(warnings)
	return result, nil
}

func (s *timelineService) buildSnapshot(ctx context.Context, projectID string, now time.Time) (*phase.Snapshot, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	snap := &phase.Snapshot{Project: *project, Now: now}
	if snap.SchedulePhases, err = s.schedule.ListByProject(ctx, projectID); err != nil {
		return nil, err
	}
	if snap.Acclimations, err = s.acclimation.ListByProject(ctx, projectID); err != nil {
		return nil, err
	}
	if snap.PunchItems, err = s.punch.ListByProject(ctx, projectID); err != nil {
		return nil, err
	}
	if snap.Deliveries, err = s.deliveries.ListByProject(ctx, projectID); err != nil {
		return nil, err
	}
	if snap.DailyLogs, err = s.logs.ListByProject(ctx, projectID); err != nil {
		return nil, err
	}
	if snap.Blockers, err = s.blockers.ListActive(ctx, projectID); err != nil {
		return nil, err
	}
	return snap, nil
}

