package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLiteAcclimationRepo implements AcclimationRepo. Readings are stored in a
// child table and loaded with their session.
type SQLiteAcclimationRepo struct {
	db db.DBTX
}

// NewSQLiteAcclimationRepo creates a new SQLiteAcclimationRepo.
func NewSQLiteAcclimationRepo(db db.DBTX) *SQLiteAcclimationRepo {
	return &SQLiteAcclimationRepo{db: db}
}

const acclimationColumns = `id, project_id, material_name, required_hours, start_time, status,
	min_temp_f, max_temp_f, min_humidity_pct, max_humidity_pct, created_at, updated_at`

func (r *SQLiteAcclimationRepo) Create(ctx context.Context, s *domain.AcclimationSession) error {
	query := `INSERT INTO acclimation_sessions (` + acclimationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.MaterialName,
		s.RequiredHours,
		s.StartTime.Format(time.RFC3339),
		string(s.Status),
		s.MinTempF,
		s.MaxTempF,
		s.MinHumidityPct,
		s.MaxHumidityPct,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting acclimation session: %w", err)
	}
	for _, reading := range s.Readings {
		if err := r.AddReading(ctx, s.ID, reading); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteAcclimationRepo) GetByID(ctx context.Context, id string) (*domain.AcclimationSession, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+acclimationColumns+` FROM acclimation_sessions WHERE id = ?`, id)
	s, err := scanAcclimation(row)
	if err != nil {
		return nil, err
	}
	if s.Readings, err = r.loadReadings(ctx, s.ID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteAcclimationRepo) ListByProject(ctx context.Context, projectID string) ([]domain.AcclimationSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+acclimationColumns+` FROM acclimation_sessions WHERE project_id = ? ORDER BY start_time, id`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing acclimation sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.AcclimationSession
	for rows.Next() {
		s, err := scanAcclimation(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating acclimation sessions: %w", err)
	}

	for i := range sessions {
		if sessions[i].Readings, err = r.loadReadings(ctx, sessions[i].ID); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *SQLiteAcclimationRepo) Update(ctx context.Context, s *domain.AcclimationSession) error {
	query := `UPDATE acclimation_sessions SET material_name = ?, required_hours = ?, start_time = ?,
		status = ?, min_temp_f = ?, max_temp_f = ?, min_humidity_pct = ?, max_humidity_pct = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.MaterialName,
		s.RequiredHours,
		s.StartTime.Format(time.RFC3339),
		string(s.Status),
		s.MinTempF,
		s.MaxTempF,
		s.MinHumidityPct,
		s.MaxHumidityPct,
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating acclimation session: %w", err)
	}
	return nil
}

func (r *SQLiteAcclimationRepo) AddReading(ctx context.Context, sessionID string, reading domain.EnvReading) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO acclimation_readings (session_id, taken_at, temp_f, humidity_pct) VALUES (?, ?, ?, ?)`,
		sessionID, reading.At.Format(time.RFC3339), reading.TempF, reading.HumidityPct)
	if err != nil {
		return fmt.Errorf("inserting acclimation reading: %w", err)
	}
	return nil
}

func (r *SQLiteAcclimationRepo) loadReadings(ctx context.Context, sessionID string) ([]domain.EnvReading, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT taken_at, temp_f, humidity_pct FROM acclimation_readings WHERE session_id = ? ORDER BY taken_at`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading acclimation readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.EnvReading
	for rows.Next() {
		var takenAt string
		var reading domain.EnvReading
		if err := rows.Scan(&takenAt, &reading.TempF, &reading.HumidityPct); err != nil {
			return nil, fmt.Errorf("scanning acclimation reading: %w", err)
		}
		if reading.At, err = time.Parse(time.RFC3339, takenAt); err != nil {
			return nil, fmt.Errorf("parsing reading timestamp: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating acclimation readings: %w", err)
	}
	return readings, nil
}

func scanAcclimation(row rowScanner) (*domain.AcclimationSession, error) {
	var s domain.AcclimationSession
	var startTime, status, createdAt, updatedAt string

	err := row.Scan(
		&s.ID, &s.ProjectID, &s.MaterialName, &s.RequiredHours, &startTime, &status,
		&s.MinTempF, &s.MaxTempF, &s.MinHumidityPct, &s.MaxHumidityPct,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("acclimation session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning acclimation session: %w", err)
	}

	s.Status = domain.AcclimationStatus(status)
	if s.StartTime, err = time.Parse(time.RFC3339, startTime); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
