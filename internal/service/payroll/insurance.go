package payroll

import "github.com/shopspring/decimal"

// InsuranceCalculator applies a capped-base percentage rule: salary above the
// cap is not subject to the deduction.
type InsuranceCalculator struct {
	Rate decimal.Decimal
	Cap  decimal.Decimal
}

func NewInsuranceCalculator(rate, cap decimal.Decimal) *InsuranceCalculator {
	return &InsuranceCalculator{Rate: rate, Cap: cap}
}

func (c *InsuranceCalculator) Calculate(salary decimal.Decimal) decimal.Decimal {
	base := decimal.Min(salary, c.Cap)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base.Mul(c.Rate)
}
