package tax

import "context"

type TaxRepository interface {
	// GetBracketsByYear returns the year's brackets ordered by Min ascending.
	GetBracketsByYear(ctx context.Context, year int) ([]Bracket, error)

	// ReplaceBracketsForYear swaps a year's whole table in one transaction.
	ReplaceBracketsForYear(ctx context.Context, year int, brackets []Bracket) error
}
