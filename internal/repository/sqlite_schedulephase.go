package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLiteSchedulePhaseRepo implements SchedulePhaseRepo. Dependencies live in
// the phase_dependencies join table, ordered by authored position.
type SQLiteSchedulePhaseRepo struct {
	db db.DBTX
}

// NewSQLiteSchedulePhaseRepo creates a new SQLiteSchedulePhaseRepo.
func NewSQLiteSchedulePhaseRepo(db db.DBTX) *SQLiteSchedulePhaseRepo {
	return &SQLiteSchedulePhaseRepo{db: db}
}

const schedulePhaseColumns = `id, project_id, name, phase, status, progress, start_date, end_date,
	baseline_start, baseline_end, actual_start, actual_end, blocking_reason, created_at, updated_at`

func (r *SQLiteSchedulePhaseRepo) Create(ctx context.Context, sp *domain.SchedulePhase) error {
	query := `INSERT INTO schedule_phases (` + schedulePhaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		sp.ID,
		sp.ProjectID,
		sp.Name,
		string(sp.Phase),
		string(sp.Status),
		sp.Progress,
		sp.StartDate.Format(dateLayout),
		sp.EndDate.Format(dateLayout),
		nullableTimeToString(sp.BaselineStart, dateLayout),
		nullableTimeToString(sp.BaselineEnd, dateLayout),
		nullableTimeToString(sp.ActualStart, time.RFC3339),
		nullableTimeToString(sp.ActualEnd, time.RFC3339),
		sp.BlockingReason,
		sp.CreatedAt.Format(time.RFC3339),
		sp.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule phase: %w", err)
	}
	return r.replaceDependencies(ctx, sp.ID, sp.Dependencies)
}

func (r *SQLiteSchedulePhaseRepo) GetByID(ctx context.Context, id string) (*domain.SchedulePhase, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+schedulePhaseColumns+` FROM schedule_phases WHERE id = ?`, id)
	sp, err := scanSchedulePhase(row)
	if err != nil {
		return nil, err
	}
	deps, err := r.loadDependencies(ctx, []string{sp.ID})
	if err != nil {
		return nil, err
	}
	sp.Dependencies = deps[sp.ID]
	return sp, nil
}

func (r *SQLiteSchedulePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]domain.SchedulePhase, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+schedulePhaseColumns+` FROM schedule_phases WHERE project_id = ? ORDER BY start_date, created_at`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule phases: %w", err)
	}
	defer rows.Close()

	var phases []domain.SchedulePhase
	var ids []string
	for rows.Next() {
		sp, err := scanSchedulePhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, *sp)
		ids = append(ids, sp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule phases: %w", err)
	}

	deps, err := r.loadDependencies(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range phases {
		phases[i].Dependencies = deps[phases[i].ID]
	}
	return phases, nil
}

func (r *SQLiteSchedulePhaseRepo) Update(ctx context.Context, sp *domain.SchedulePhase) error {
	query := `UPDATE schedule_phases SET name = ?, phase = ?, status = ?, progress = ?,
		start_date = ?, end_date = ?, baseline_start = ?, baseline_end = ?,
		actual_start = ?, actual_end = ?, blocking_reason = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		sp.Name,
		string(sp.Phase),
		string(sp.Status),
		sp.Progress,
		sp.StartDate.Format(dateLayout),
		sp.EndDate.Format(dateLayout),
		nullableTimeToString(sp.BaselineStart, dateLayout),
		nullableTimeToString(sp.BaselineEnd, dateLayout),
		nullableTimeToString(sp.ActualStart, time.RFC3339),
		nullableTimeToString(sp.ActualEnd, time.RFC3339),
		sp.BlockingReason,
		sp.UpdatedAt.Format(time.RFC3339),
		sp.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule phase: %w", err)
	}
	return r.replaceDependencies(ctx, sp.ID, sp.Dependencies)
}

func (r *SQLiteSchedulePhaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule phase: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule phase not found: %s", id)
	}
	return nil
}

func (r *SQLiteSchedulePhaseRepo) replaceDependencies(ctx context.Context, phaseID string, deps []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM phase_dependencies WHERE phase_id = ?`, phaseID); err != nil {
		return fmt.Errorf("clearing phase dependencies: %w", err)
	}
	for i, dep := range deps {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO phase_dependencies (phase_id, depends_on_id, position) VALUES (?, ?, ?)`,
			phaseID, dep, i); err != nil {
			return fmt.Errorf("inserting phase dependency: %w", err)
		}
	}
	return nil
}

func (r *SQLiteSchedulePhaseRepo) loadDependencies(ctx context.Context, phaseIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(phaseIDs))
	if len(phaseIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT phase_id, depends_on_id FROM phase_dependencies ORDER BY phase_id, position`)
	if err != nil {
		return nil, fmt.Errorf("loading phase dependencies: %w", err)
	}
	defer rows.Close()

	wanted := make(map[string]bool, len(phaseIDs))
	for _, id := range phaseIDs {
		wanted[id] = true
	}
	for rows.Next() {
		var phaseID, dep string
		if err := rows.Scan(&phaseID, &dep); err != nil {
			return nil, fmt.Errorf("scanning phase dependency: %w", err)
		}
		if wanted[phaseID] {
			out[phaseID] = append(out[phaseID], dep)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phase dependencies: %w", err)
	}
	return out, nil
}

func scanSchedulePhase(row rowScanner) (*domain.SchedulePhase, error) {
	var sp domain.SchedulePhase
	var phase, status string
	var startDate, endDate, createdAt, updatedAt string
	var baselineStart, baselineEnd, actualStart, actualEnd sql.NullString

	err := row.Scan(
		&sp.ID, &sp.ProjectID, &sp.Name, &phase, &status, &sp.Progress,
		&startDate, &endDate, &baselineStart, &baselineEnd, &actualStart,
		&actualEnd, &sp.BlockingReason, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schedule phase not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning schedule phase: %w", err)
	}

	sp.Phase = domain.Phase(phase)
	sp.Status = domain.SchedulePhaseStatus(status)
	if sp.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if sp.EndDate, err = time.Parse(dateLayout, endDate); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	sp.BaselineStart = parseNullableTime(baselineStart, dateLayout)
	sp.BaselineEnd = parseNullableTime(baselineEnd, dateLayout)
	sp.ActualStart = parseNullableTime(actualStart, time.RFC3339)
	sp.ActualEnd = parseNullableTime(actualEnd, time.RFC3339)
	if sp.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if sp.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &sp, nil
}
