package overtime

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitOvertimeRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !r.Hours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}
	// A zero multiplier means "use the configured default".
	if !r.Multiplier.IsZero() && r.Multiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "multiplier must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Status     string          `json:"status"`
	ApprovedBy *string         `json:"approved_by,omitempty"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(time.DateOnly),
		Hours:      rec.Hours,
		Multiplier: rec.Multiplier,
		Status:     string(rec.Status),
		ApprovedBy: rec.ApprovedBy,
	}
}
