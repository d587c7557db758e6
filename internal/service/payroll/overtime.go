package payroll

import (
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/shopspring/decimal"
)

// OvertimeCalculator converts approved overtime hours into pay. The hourly
// rate derives from basic salary over the standard monthly hours
// (working days x shift hours, conventionally 22 x 8 = 176).
type OvertimeCalculator struct {
	WorkingDaysPerMonth int
	ShiftHoursPerDay    int
}

func NewOvertimeCalculator(workingDaysPerMonth, shiftHoursPerDay int) *OvertimeCalculator {
	return &OvertimeCalculator{
		WorkingDaysPerMonth: workingDaysPerMonth,
		ShiftHoursPerDay:    shiftHoursPerDay,
	}
}

// HourlyRate derives the employee's hourly rate from basic salary.
func (c *OvertimeCalculator) HourlyRate(basicSalary decimal.Decimal) decimal.Decimal {
	monthlyHours := decimal.NewFromInt(int64(c.WorkingDaysPerMonth * c.ShiftHoursPerDay))
	return basicSalary.Div(monthlyHours)
}

// Pay sums hourly_rate x multiplier x hours across the given records. Callers
// pass approved records only; unapproved ones never reach this function.
func (c *OvertimeCalculator) Pay(basicSalary decimal.Decimal, records []overtime.Record) decimal.Decimal {
	hourly := c.HourlyRate(basicSalary)

	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(hourly.Mul(rec.Multiplier).Mul(rec.Hours))
	}
	return total
}
