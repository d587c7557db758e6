package payroll

import (
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// TaxCalculator applies a progressive marginal-rate bracket table. Income is
// taxed in slices, each slice at its own bracket's rate.
type TaxCalculator struct {
}

func NewTaxCalculator() *TaxCalculator {
	return &TaxCalculator{}
}

// Calculate returns the tax owed on taxableAmount. Brackets must be sorted
// by Min ascending; Min is inclusive, Max exclusive, a nil Max is unbounded.
func (c *TaxCalculator) Calculate(taxableAmount decimal.Decimal, brackets []tax.Bracket) decimal.Decimal {
	if taxableAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, bracket := range brackets {
		if taxableAmount.LessThanOrEqual(bracket.Min) {
			break
		}

		upper := taxableAmount
		if bracket.Max != nil && bracket.Max.LessThan(upper) {
			upper = *bracket.Max
		}

		slice := upper.Sub(bracket.Min)
		if slice.IsPositive() {
			total = total.Add(slice.Mul(bracket.Rate))
		}
	}

	return total
}

// ValidateBrackets checks the year's table: ordered, contiguous,
// non-overlapping, rates within [0, 1], final bracket unbounded.
func ValidateBrackets(brackets []tax.Bracket) error {
	if len(brackets) == 0 {
		return tax.ErrBracketsNotFound
	}
	if brackets[0].Min.IsNegative() {
		return tax.ErrInvalidBracketSet
	}
	one := decimal.NewFromInt(1)
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return tax.ErrInvalidBracketSet
		}
		last := i == len(brackets)-1
		if last {
			if b.Max != nil {
				return tax.ErrInvalidBracketSet
			}
			continue
		}
		if b.Max == nil || !brackets[i+1].Min.Equal(*b.Max) || !b.Min.LessThan(*b.Max) {
			return tax.ErrInvalidBracketSet
		}
	}
	return nil
}
