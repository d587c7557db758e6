package payroll

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PERIOD DTOs
// ========================================

type CreatePeriodRequest struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PaymentDate string `json:"payment_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "payment_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	ProcessedBy *string `json:"processed_by,omitempty"`
}

func ToPeriodResponse(p Period) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID,
		Year:        p.Year,
		Month:       p.Month,
		StartDate:   p.StartDate.Format(time.DateOnly),
		EndDate:     p.EndDate.Format(time.DateOnly),
		PaymentDate: p.PaymentDate.Format(time.DateOnly),
		Status:      string(p.Status),
		ApprovedBy:  p.ApprovedBy,
		ProcessedBy: p.ProcessedBy,
	}
}

// ========================================
// SALARY CALCULATION DTOs
// ========================================

// SalaryBreakdown is the full result of one employee-period computation.
// Monetary values are rounded to 2 decimals at this boundary.
type SalaryBreakdown struct {
	EmployeeID       string             `json:"employee_id"`
	PeriodID         string             `json:"period_id"`
	BasicSalary      decimal.Decimal    `json:"basic_salary"`
	Attendance       attendance.Summary `json:"attendance"`
	OvertimePay      decimal.Decimal    `json:"overtime_pay"`
	TotalBenefits    decimal.Decimal    `json:"total_benefits"`
	TotalDeductions  decimal.Decimal    `json:"total_deductions"`
	TaxDeductions    decimal.Decimal    `json:"tax_deductions"`
	InsuranceAmount  decimal.Decimal    `json:"insurance_amount"`
	AbsenceDeduction decimal.Decimal    `json:"absence_deduction"`
	GrossSalary      decimal.Decimal    `json:"gross_salary"`
	NetSalary        decimal.Decimal    `json:"net_salary"`
}

// GeneratePayrollResult tallies a period-wide payroll run. A single
// employee's failure is recorded here, never raised.
type GeneratePayrollResult struct {
	PeriodID     string            `json:"period_id"`
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Failures     map[string]string `json:"failures,omitempty"` // employee_id -> reason
	Entries      []EntryResponse   `json:"entries"`
}

type EntryResponse struct {
	ID               string          `json:"id"`
	PeriodID         string          `json:"period_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TaxDeductions    decimal.Decimal `json:"tax_deductions"`
	InsuranceAmount  decimal.Decimal `json:"insurance_amount"`
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	PresentDays      int             `json:"present_days"`
	TotalDays        int             `json:"total_days"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentDate      *string         `json:"payment_date,omitempty"`
}

func ToEntryResponse(e Entry) EntryResponse {
	var paymentDate *string
	if e.PaymentDate != nil {
		s := e.PaymentDate.Format(time.DateOnly)
		paymentDate = &s
	}
	return EntryResponse{
		ID:               e.ID,
		PeriodID:         e.PeriodID,
		EmployeeID:       e.EmployeeID,
		EmployeeName:     e.EmployeeName,
		BasicSalary:      e.BasicSalary,
		TotalAllowances:  e.TotalAllowances,
		OvertimePay:      e.OvertimePay,
		TotalDeductions:  e.TotalDeductions,
		TaxDeductions:    e.TaxDeductions,
		InsuranceAmount:  e.InsuranceAmount,
		AbsenceDeduction: e.AbsenceDeduction,
		GrossSalary:      e.GrossSalary,
		NetSalary:        e.NetSalary,
		PresentDays:      e.PresentDays,
		TotalDays:        e.TotalDays,
		PaymentStatus:    string(e.PaymentStatus),
		PaymentDate:      paymentDate,
	}
}

// ========================================
// PAYSLIP DTOs
// ========================================

// Payslip packages an existing entry with employee identity and year-to-date
// totals for presentation. Generating a payslip never recomputes an entry
// that already exists.
type Payslip struct {
	Employee   PayslipEmployee `json:"employee"`
	Period     PeriodResponse  `json:"period"`
	Entry      EntryResponse   `json:"entry"`
	YearToDate YearToDate      `json:"year_to_date"`
}

type PayslipEmployee struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	FullName       string  `json:"full_name"`
	DepartmentName *string `json:"department_name,omitempty"`
	PositionName   *string `json:"position_name,omitempty"`
}

type YearToDate struct {
	Gross decimal.Decimal `json:"gross"`
	Tax   decimal.Decimal `json:"tax"`
	Net   decimal.Decimal `json:"net"`
}

// ========================================
// PROJECTION DTOs
// ========================================

// ProjectionOptions controls the 12-month salary projection run.
type ProjectionOptions struct {
	DepartmentID *string `json:"department_id"`
}

// DepartmentProjection aggregates projected cost per department per month.
// Projections skip attendance and tax entirely; they are a coarse budget
// forecast over base salary, allowances and deductions.
type DepartmentProjection struct {
	DepartmentID   string            `json:"department_id"`
	DepartmentName *string           `json:"department_name,omitempty"`
	Monthly        []decimal.Decimal `json:"monthly"` // index 0 = January
	AnnualTotal    decimal.Decimal   `json:"annual_total"`
}

type ProjectionResult struct {
	Year        int                    `json:"year"`
	Departments []DepartmentProjection `json:"departments"`
}
