package payroll

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodExists        = errors.New("payroll period already exists for this month")
	ErrPeriodNotDraft      = errors.New("payroll period is not in draft status")
	ErrPeriodNotApproved   = errors.New("payroll period has not been approved")
	ErrPeriodProcessed     = errors.New("payroll period has already been processed")
	ErrEntryNotFound       = errors.New("payroll entry not found")
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrInvalidPeriodRange  = errors.New("period start date must not be after end date")
)
