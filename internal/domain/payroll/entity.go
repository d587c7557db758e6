package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum: draft -> approved -> processed
type PeriodStatus string

const (
	PeriodStatusDraft     PeriodStatus = "draft"
	PeriodStatusApproved  PeriodStatus = "approved"
	PeriodStatusProcessed PeriodStatus = "processed"
)

// Period is one pay period, commonly a calendar month.
type Period struct {
	ID          string
	Year        int
	Month       int
	StartDate   time.Time
	EndDate     time.Time
	PaymentDate time.Time
	Status      PeriodStatus
	ApprovedBy  *string
	ApprovedAt  *time.Time
	ProcessedBy *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalDays is the inclusive day count of the period, used as the divisor for
// absence deductions.
func (p Period) TotalDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// PaymentStatus of a payroll entry.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Entry is the computed payroll result for one employee in one period.
// Exactly one entry exists per (period, employee); recomputation overwrites.
type Entry struct {
	ID               string
	PeriodID         string
	EmployeeID       string
	BasicSalary      decimal.Decimal
	TotalAllowances  decimal.Decimal
	OvertimePay      decimal.Decimal
	TotalDeductions  decimal.Decimal
	TaxDeductions    decimal.Decimal
	InsuranceAmount  decimal.Decimal
	AbsenceDeduction decimal.Decimal
	GrossSalary      decimal.Decimal
	NetSalary        decimal.Decimal
	PresentDays      int
	TotalDays        int
	PaymentStatus    PaymentStatus
	PaymentDate      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCode   *string
	DepartmentName *string
	PositionName   *string
}

// SalaryRecord is the current salary snapshot for one employee. One current
// record per employee; updates overwrite instead of versioning.
type SalaryRecord struct {
	ID          string
	EmployeeID  string
	BaseSalary  decimal.Decimal
	Bonuses     decimal.Decimal
	Deductions  decimal.Decimal
	OvertimePay decimal.Decimal
	Total       decimal.Decimal // base + bonuses + overtime - deductions
	UpdatedAt   time.Time
}
