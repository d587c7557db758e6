package response

import (
	"errors"
	"net/http"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/auth"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/payroll"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeEmailExists):
		Conflict(w, "Email already registered")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRecordNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrAlreadyProcessed):
		Conflict(w, "Overtime record already processed")

	// Benefit domain errors
	case errors.Is(err, benefit.ErrItemNotFound):
		NotFound(w, "Benefit or deduction item not found")

	// Tax domain errors
	case errors.Is(err, tax.ErrBracketsNotFound):
		NotFound(w, "No tax brackets configured for this year")
	case errors.Is(err, tax.ErrInvalidBracketSet):
		BadRequest(w, "Tax brackets must be contiguous with an unbounded last bracket", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodExists):
		Conflict(w, "Payroll period already exists for this month")
	case errors.Is(err, payroll.ErrPeriodNotDraft):
		Conflict(w, "Payroll period is not in draft status")
	case errors.Is(err, payroll.ErrPeriodNotApproved):
		Conflict(w, "Payroll period has not been approved")
	case errors.Is(err, payroll.ErrPeriodProcessed):
		Conflict(w, "Payroll period has already been processed")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrInvalidPeriodRange):
		BadRequest(w, "Period start date must not be after end date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
