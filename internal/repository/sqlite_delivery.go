package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmoreno/groundwork/internal/db"
	"github.com/dmoreno/groundwork/internal/domain"
)

// SQLiteDeliveryRepo implements DeliveryRepo using a SQLite database.
type SQLiteDeliveryRepo struct {
	db db.DBTX
}

// NewSQLiteDeliveryRepo creates a new SQLiteDeliveryRepo.
func NewSQLiteDeliveryRepo(db db.DBTX) *SQLiteDeliveryRepo {
	return &SQLiteDeliveryRepo{db: db}
}

const deliveryColumns = `id, project_id, material_name, quantity, unit, status, expected_date,
	delivered_at, requires_acclimation, created_at, updated_at`

func (r *SQLiteDeliveryRepo) Create(ctx context.Context, d *domain.MaterialDelivery) error {
	query := `INSERT INTO deliveries (` + deliveryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.ProjectID,
		d.MaterialName,
		d.Quantity,
		d.Unit,
		string(d.Status),
		d.ExpectedDate.Format(dateLayout),
		nullableTimeToString(d.DeliveredAt, time.RFC3339),
		boolToInt(d.RequiresAcclimation),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting delivery: %w", err)
	}
	return nil
}

func (r *SQLiteDeliveryRepo) GetByID(ctx context.Context, id string) (*domain.MaterialDelivery, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = ?`, id)
	return scanDelivery(row)
}

func (r *SQLiteDeliveryRepo) ListByProject(ctx context.Context, projectID string) ([]domain.MaterialDelivery, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE project_id = ? ORDER BY expected_date, id`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("listing deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.MaterialDelivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deliveries: %w", err)
	}
	return deliveries, nil
}

func (r *SQLiteDeliveryRepo) Update(ctx context.Context, d *domain.MaterialDelivery) error {
	query := `UPDATE deliveries SET material_name = ?, quantity = ?, unit = ?, status = ?,
		expected_date = ?, delivered_at = ?, requires_acclimation = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.MaterialName,
		d.Quantity,
		d.Unit,
		string(d.Status),
		d.ExpectedDate.Format(dateLayout),
		nullableTimeToString(d.DeliveredAt, time.RFC3339),
		boolToInt(d.RequiresAcclimation),
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating delivery: %w", err)
	}
	return nil
}

func scanDelivery(row rowScanner) (*domain.MaterialDelivery, error) {
	var d domain.MaterialDelivery
	var status, expectedDate, createdAt, updatedAt string
	var deliveredAt sql.NullString
	var requiresAcclimation int

	err := row.Scan(&d.ID, &d.ProjectID, &d.MaterialName, &d.Quantity, &d.Unit, &status,
		&expectedDate, &deliveredAt, &requiresAcclimation, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("delivery not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning delivery: %w", err)
	}

	d.Status = domain.DeliveryStatus(status)
	if d.ExpectedDate, err = time.Parse(dateLayout, expectedDate); err != nil {
		return nil, fmt.Errorf("parsing expected date: %w", err)
	}
	d.DeliveredAt = parseNullableTime(deliveredAt, time.RFC3339)
	d.RequiresAcclimation = intToBool(requiresAcclimation)
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
