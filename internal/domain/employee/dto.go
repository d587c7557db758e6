package employee

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Code         string          `json:"code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	ShiftID      *string         `json:"shift_id"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	DepartmentID string          `json:"department_id"`
	PositionID   string          `json:"position_id"`
	HireDate     string          `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if !validator.IsNonNegative(r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name"`
	ShiftID      *string          `json:"shift_id"`
	BasicSalary  *decimal.Decimal `json:"basic_salary"`
	DepartmentID *string          `json:"department_id"`
	PositionID   *string          `json:"position_id"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.BasicSalary != nil && !validator.IsNonNegative(*r.BasicSalary) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "basic_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	DepartmentID *string
	ActiveOnly   bool
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	ShiftID        *string         `json:"shift_id"`
	BasicSalary    decimal.Decimal `json:"basic_salary"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName *string         `json:"department_name,omitempty"`
	PositionID     string          `json:"position_id"`
	PositionName   *string         `json:"position_name,omitempty"`
	HireDate       string          `json:"hire_date"`
	IsActive       bool            `json:"is_active"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Code:           e.Code,
		FullName:       e.FullName,
		Email:          e.Email,
		ShiftID:        e.ShiftID,
		BasicSalary:    e.BasicSalary,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		PositionID:     e.PositionID,
		PositionName:   e.PositionName,
		HireDate:       e.HireDate.Format(time.DateOnly),
		IsActive:       e.IsActive,
	}
}
