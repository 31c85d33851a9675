package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLiteDailyLogRepo implements DailyLogRepo. Crew names are stored as a
// comma-joined list.
type SQLiteDailyLogRepo struct {
	db db.DBTX
}

// NewSQLiteDailyLogRepo creates a new SQLiteDailyLogRepo.
func NewSQLiteDailyLogRepo(db db.DBTX) *SQLiteDailyLogRepo {
	return &SQLiteDailyLogRepo{db: db}
}

const dailyLogColumns = `id, project_id, log_date, phase, crew, hours_worked, work_completed, notes, created_at, updated_at`

func (r *SQLiteDailyLogRepo) Create(ctx context.Context, l *domain.DailyLog) error {
	query := `INSERT INTO daily_logs (` + dailyLogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.ProjectID,
		l.Date.Format(dateLayout),
		string(l.Phase),
		joinList(l.Crew),
		l.HoursWorked,
		l.WorkCompleted,
		l.Notes,
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily log: %w", err)
	}
	return nil
}

func (r *SQLiteDailyLogRepo) GetByID(ctx context.Context, id string) (*domain.DailyLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs WHERE id = ?`, id)
	return scanDailyLog(row)
}

func (r *SQLiteDailyLogRepo) ListByProject(ctx context.Context, projectID string) ([]domain.DailyLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+dailyLogColumns+` FROM daily_logs WHERE project_id = ? ORDER BY log_date, created_at`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily logs: %w", err)
	}
	return logs, nil
}

func (r *SQLiteDailyLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting daily log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("daily log not found: %s", id)
	}
	return nil
}

func scanDailyLog(row rowScanner) (*domain.DailyLog, error) {
	var l domain.DailyLog
	var logDate, phase, crew, createdAt, updatedAt string

	err := row.Scan(&l.ID, &l.ProjectID, &logDate, &phase, &crew, &l.HoursWorked,
		&l.WorkCompleted, &l.Notes, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("daily log not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning daily log: %w", err)
	}

	l.Phase = domain.Phase(phase)
	l.Crew = splitList(crew)
	if l.Date, err = time.Parse(dateLayout, logDate); err != nil {
		return nil, fmt.Errorf("parsing log date: %w", err)
	}
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if l.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &l, nil
}
