package payroll

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/shopspring/decimal"
)

// BenefitsResolver turns recurring benefit/deduction items into period
// amounts against an employee's basic salary.
type BenefitsResolver struct {
}

func NewBenefitsResolver() *BenefitsResolver {
	return &BenefitsResolver{}
}

// Resolve evaluates every item active on asOf and returns the benefit and
// deduction totals. Percentage items resolve against basicSalary; fixed items
// use their amount as-is.
func (r *BenefitsResolver) Resolve(items []benefit.Item, basicSalary decimal.Decimal, asOf time.Time) (totalBenefits, totalDeductions decimal.Decimal) {
	totalBenefits, totalDeductions = decimal.Zero, decimal.Zero

	for _, item := range items {
		if !item.ActiveOn(asOf) {
			continue
		}

		amount := item.Amount
		if item.IsPercentage {
			amount = basicSalary.Mul(item.Percentage).Div(decimal.NewFromInt(100))
		}

		switch item.Category {
		case benefit.CategoryBenefit:
			totalBenefits = totalBenefits.Add(amount)
		case benefit.CategoryDeduction:
			totalDeductions = totalDeductions.Add(amount)
		}
	}

	return totalBenefits, totalDeductions
}
