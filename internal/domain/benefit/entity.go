package benefit

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryBenefit   Category = "benefit"
	CategoryDeduction Category = "deduction"
)

// Item is a recurring benefit or deduction line. It is either a fixed amount
// or a percentage of basic salary, never both.
type Item struct {
	ID            string
	EmployeeID    string
	Name          string
	Category      Category
	IsPercentage  bool
	Amount        decimal.Decimal // fixed amount, zero when percentage-based
	Percentage    decimal.Decimal // percent of basic salary, zero when fixed
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Recurring     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveOn reports whether the item's effective range includes the given date.
func (i Item) ActiveOn(date time.Time) bool {
	if date.Before(i.EffectiveFrom) {
		return false
	}
	if i.EffectiveTo != nil && date.After(*i.EffectiveTo) {
		return false
	}
	return true
}
