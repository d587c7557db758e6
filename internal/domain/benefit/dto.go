package benefit

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateItemRequest struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	IsPercentage  bool            `json:"is_percentage"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    decimal.Decimal `json:"percentage"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to"`
	Recurring     bool            `json:"recurring"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryBenefit), string(CategoryDeduction)}) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be benefit or deduction"})
	}
	if r.IsPercentage {
		if !validator.IsValidPercentage(r.Percentage) {
			errs = append(errs, validator.ValidationError{Field: "percentage", Message: "percentage must be between 0 and 100"})
		}
	} else if !validator.IsNonNegative(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must not be negative"})
	}

	from, okFrom := validator.IsValidDate(r.EffectiveFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be in YYYY-MM-DD format"})
	}
	if r.EffectiveTo != nil {
		to, okTo := validator.IsValidDate(*r.EffectiveTo)
		if !okTo {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "effective_to must be in YYYY-MM-DD format"})
		} else if okFrom && to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "effective_to must not be before effective_from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	IsPercentage  bool            `json:"is_percentage"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    decimal.Decimal `json:"percentage"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
	Recurring     bool            `json:"recurring"`
}

func ToResponse(item Item) ItemResponse {
	var to *string
	if item.EffectiveTo != nil {
		s := item.EffectiveTo.Format(time.DateOnly)
		to = &s
	}
	return ItemResponse{
		ID:            item.ID,
		EmployeeID:    item.EmployeeID,
		Name:          item.Name,
		Category:      string(item.Category),
		IsPercentage:  item.IsPercentage,
		Amount:        item.Amount,
		Percentage:    item.Percentage,
		EffectiveFrom: item.EffectiveFrom.Format(time.DateOnly),
		EffectiveTo:   to,
		Recurring:     item.Recurring,
	}
}
