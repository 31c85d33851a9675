package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLiteBlockerRepo implements BlockerRepo. Phase tags are stored as a
// comma-joined list; an empty list means the blocker is phase-agnostic.
type SQLiteBlockerRepo struct {
	db db.DBTX
}

// NewSQLiteBlockerRepo creates a new SQLiteBlockerRepo.
func NewSQLiteBlockerRepo(db db.DBTX) *SQLiteBlockerRepo {
	return &SQLiteBlockerRepo{db: db}
}

const blockerColumns = `id, project_id, phases, reason, source, source_ref, created_at, resolved_at`

func (r *SQLiteBlockerRepo) Create(ctx context.Context, b *domain.ProjectBlocker) error {
	phases := make([]string, len(b.Phases))
	for i, p := range b.Phases {
		phases[i] = string(p)
	}
	query := `INSERT INTO blockers (` + blockerColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.ProjectID,
		joinList(phases),
		b.Reason,
		string(b.Source),
		b.SourceRef,
		b.CreatedAt.Format(time.RFC3339),
		nullableTimeToString(b.ResolvedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting blocker: %w", err)
	}
	return nil
}

func (r *SQLiteBlockerRepo) GetByID(ctx context.Context, id string) (*domain.ProjectBlocker, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+blockerColumns+` FROM blockers WHERE id = ?`, id)
	return scanBlocker(row)
}

func (r *SQLiteBlockerRepo) ListActive(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error) {
	return r.list(ctx,
		`SELECT `+blockerColumns+` FROM blockers WHERE project_id = ? AND resolved_at IS NULL ORDER BY created_at, id`,
		projectID)
}

func (r *SQLiteBlockerRepo) ListAll(ctx context.Context, projectID string) ([]domain.ProjectBlocker, error) {
	return r.list(ctx,
		`SELECT `+blockerColumns+` FROM blockers WHERE project_id = ? ORDER BY created_at, id`,
		projectID)
}

func (r *SQLiteBlockerRepo) list(ctx context.Context, query string, args ...any) ([]domain.ProjectBlocker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing blockers: %w", err)
	}
	defer rows.Close()

	var blockers []domain.ProjectBlocker
	for rows.Next() {
		b, err := scanBlocker(rows)
		if err != nil {
			return nil, err
		}
		blockers = append(blockers, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blockers: %w", err)
	}
	return blockers, nil
}

func (r *SQLiteBlockerRepo) FindActiveBySource(ctx context.Context, projectID string, source domain.BlockerSource, sourceRef string) (*domain.ProjectBlocker, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blockerColumns+` FROM blockers
		 WHERE project_id = ? AND source = ? AND source_ref = ? AND resolved_at IS NULL`,
		projectID, string(source), sourceRef)
	b, err := scanBlocker(row)
	if err == errBlockerNotFound {
		return nil, nil
	}
	return b, err
}

func (r *SQLiteBlockerRepo) Resolve(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE blockers SET resolved_at = ? WHERE id = ? AND resolved_at IS NULL`,
		nowUTC(), id)
	if err != nil {
		return fmt.Errorf("resolving blocker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking resolve result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no active blocker: %s", id)
	}
	return nil
}

var errBlockerNotFound = fmt.Errorf("blocker not found")

func scanBlocker(row rowScanner) (*domain.ProjectBlocker, error) {
	var b domain.ProjectBlocker
	var phases, source, createdAt string
	var resolvedAt sql.NullString

	err := row.Scan(&b.ID, &b.ProjectID, &phases, &b.Reason, &source, &b.SourceRef, &createdAt, &resolvedAt)
	if err == sql.ErrNoRows {
		return nil, errBlockerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning blocker: %w", err)
	}

	for _, p := range splitList(phases) {
		b.Phases = append(b.Phases, domain.Phase(p))
	}
	b.Source = domain.BlockerSource(source)
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	b.ResolvedAt = parseNullableTime(resolvedAt, time.RFC3339)
	return &b, nil
}
