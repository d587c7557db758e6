package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, employee_id, date, hours, multiplier, status,
	approved_by, approved_at, created_at, updated_at
`

func scanOvertime(row pgx.Row) (overtime.Record, error) {
	var rec overtime.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Hours, &rec.Multiplier,
		&rec.Status, &rec.ApprovedBy, &rec.ApprovedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, rec overtime.Record) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_records (id, employee_id, date, hours, multiplier, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.Hours, rec.Multiplier, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return overtime.Record{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return rec, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_records WHERE id = $1`

	rec, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Record{}, overtime.ErrRecordNotFound
		}
		return overtime.Record{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

// GetApprovedByEmployeeAndRange implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_records
		WHERE employee_id = $1 AND status = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, overtime.StatusApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.Record
	for rows.Next() {
		rec, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.Record
	for rows.Next() {
		rec, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepository) Update(ctx context.Context, rec overtime.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_records
		SET hours = $2, multiplier = $3, status = $4, approved_by = $5,
			approved_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.Hours, rec.Multiplier, rec.Status, rec.ApprovedBy, rec.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRecordNotFound
	}

	return nil
}
