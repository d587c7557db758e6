package postgresql

import (
	"context"
	"fmt"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
)

type taxRepository struct {
	db *database.DB
}

func NewTaxRepository(db *database.DB) tax.TaxRepository {
	return &taxRepository{db: db}
}

// GetBracketsByYear implements tax.TaxRepository.
func (r *taxRepository) GetBracketsByYear(ctx context.Context, year int) ([]tax.Bracket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, year, min_amount, max_amount, rate, created_at, updated_at
		FROM tax_brackets
		WHERE year = $1
		ORDER BY min_amount
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax brackets: %w", err)
	}
	defer rows.Close()

	var brackets []tax.Bracket
	for rows.Next() {
		var b tax.Bracket
		if err := rows.Scan(&b.ID, &b.Year, &b.Min, &b.Max, &b.Rate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax bracket: %w", err)
		}
		brackets = append(brackets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(brackets) == 0 {
		return nil, tax.ErrBracketsNotFound
	}

	return brackets, nil
}

// ReplaceBracketsForYear implements tax.TaxRepository.
func (r *taxRepository) ReplaceBracketsForYear(ctx context.Context, year int, brackets []tax.Bracket) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM tax_brackets WHERE year = $1`, year); err != nil {
			return fmt.Errorf("failed to clear tax brackets: %w", err)
		}

		query := `
			INSERT INTO tax_brackets (id, year, min_amount, max_amount, rate)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, b := range brackets {
			if _, err := q.Exec(ctx, query, b.ID, year, b.Min, b.Max, b.Rate); err != nil {
				return fmt.Errorf("failed to insert tax bracket: %w", err)
			}
		}

		return nil
	})
}
