package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLitePunchRepo implements PunchRepo using a SQLite database.
type SQLitePunchRepo struct {
	db db.DBTX
}

// NewSQLitePunchRepo creates a new SQLitePunchRepo.
func NewSQLitePunchRepo(db db.DBTX) *SQLitePunchRepo {
	return &SQLitePunchRepo{db: db}
}

const punchColumns = `id, project_id, title, room, severity, status, assigned_to, created_at, closed_at, updated_at`

func (r *SQLitePunchRepo) Create(ctx context.Context, pi *domain.PunchItem) error {
	query := `INSERT INTO punch_items (` + punchColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		pi.ID,
		pi.ProjectID,
		pi.Title,
		pi.Room,
		string(pi.Severity),
		string(pi.Status),
		pi.AssignedTo,
		pi.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(pi.ClosedAt, time.RFC3339),
		pi.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting punch item: %w", err)
	}
	return nil
}

func (r *SQLitePunchRepo) GetByID(ctx context.Context, id string) (*domain.PunchItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+punchColumns+` FROM punch_items WHERE id = ?`, id)
	return scanPunchItem(row)
}

func (r *SQLitePunchRepo) ListByProject(ctx context.Context, projectID string) ([]domain.PunchItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+punchColumns+` FROM punch_items WHERE project_id = ? ORDER BY created_at, id`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing punch items: %w", err)
	}
	defer rows.Close()

	var items []domain.PunchItem
	for rows.Next() {
		pi, err := scanPunchItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *pi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating punch items: %w", err)
	}
	return items, nil
}

func (r *SQLitePunchRepo) CountOpen(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM punch_items WHERE project_id = ? AND status != 'completed'`,
		projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting open punch items: %w", err)
	}
	return n, nil
}

func (r *SQLitePunchRepo) CountOpenCritical(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM punch_items WHERE project_id = ? AND status != 'completed' AND severity = 'critical'`,
		projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting open critical punch items: %w", err)
	}
	return n, nil
}

func (r *SQLitePunchRepo) Update(ctx context.Context, pi *domain.PunchItem) error {
	query := `UPDATE punch_items SET title = ?, room = ?, severity = ?, status = ?,
		assigned_to = ?, closed_at = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		pi.Title,
		pi.Room,
		string(pi.Severity),
		string(pi.Status),
		pi.AssignedTo,
		nullableTimeToString(pi.ClosedAt, time.RFC3339),
		pi.UpdatedAt.Format(time.RFC3339),
		pi.ID,
	)
	if err != nil {
		return fmt.Errorf("updating punch item: %w", err)
	}
	return nil
}

func (r *SQLitePunchRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM punch_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting punch item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("punch item not found: %s", id)
	}
	return nil
}

func scanPunchItem(row rowScanner) (*domain.PunchItem, error) {
	var pi domain.PunchItem
	var severity, status, createdAt, updatedAt string
	var closedAt sql.NullString

	err := row.Scan(&pi.ID, &pi.ProjectID, &pi.Title, &pi.Room, &severity, &status,
		&pi.AssignedTo, &createdAt, &closedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("punch item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning punch item: %w", err)
	}

	pi.Severity = domain.PunchSeverity(severity)
	pi.Status = domain.PunchStatus(status)
	if pi.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	pi.ClosedAt = parseNullableTime(closedAt, time.RFC3339)
	if pi.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &pi, nil
}
