package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
)

type benefitRepository struct {
	db *database.DB
}

func NewBenefitRepository(db *database.DB) benefit.BenefitRepository {
	return &benefitRepository{db: db}
}

const benefitColumns = `
	id, employee_id, name, category, is_percentage, amount, percentage,
	effective_from, effective_to, recurring, created_at, updated_at
`

func scanBenefit(row pgx.Row) (benefit.Item, error) {
	var item benefit.Item
	err := row.Scan(
		&item.ID, &item.EmployeeID, &item.Name, &item.Category, &item.IsPercentage,
		&item.Amount, &item.Percentage, &item.EffectiveFrom, &item.EffectiveTo,
		&item.Recurring, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// Create implements benefit.BenefitRepository.
func (r *benefitRepository) Create(ctx context.Context, item benefit.Item) (benefit.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO benefit_items (
			id, employee_id, name, category, is_percentage, amount, percentage,
			effective_from, effective_to, recurring
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		item.ID, item.EmployeeID, item.Name, item.Category, item.IsPercentage,
		item.Amount, item.Percentage, item.EffectiveFrom, item.EffectiveTo, item.Recurring,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return benefit.Item{}, fmt.Errorf("failed to create benefit item: %w", err)
	}

	return item, nil
}

// GetByID implements benefit.BenefitRepository.
func (r *benefitRepository) GetByID(ctx context.Context, id string) (benefit.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + benefitColumns + ` FROM benefit_items WHERE id = $1`

	item, err := scanBenefit(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return benefit.Item{}, benefit.ErrItemNotFound
		}
		return benefit.Item{}, fmt.Errorf("failed to get benefit item: %w", err)
	}

	return item, nil
}

// ListByEmployee implements benefit.BenefitRepository.
func (r *benefitRepository) ListByEmployee(ctx context.Context, employeeID string) ([]benefit.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + benefitColumns + ` FROM benefit_items WHERE employee_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit items: %w", err)
	}
	defer rows.Close()

	var items []benefit.Item
	for rows.Next() {
		item, err := scanBenefit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benefit item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Update implements benefit.BenefitRepository.
func (r *benefitRepository) Update(ctx context.Context, item benefit.Item) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE benefit_items
		SET name = $2, category = $3, is_percentage = $4, amount = $5,
			percentage = $6, effective_from = $7, effective_to = $8,
			recurring = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.IsPercentage, item.Amount,
		item.Percentage, item.EffectiveFrom, item.EffectiveTo, item.Recurring,
	)
	if err != nil {
		return fmt.Errorf("failed to update benefit item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return benefit.ErrItemNotFound
	}

	return nil
}
