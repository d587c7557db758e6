package attendance

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusLate, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchMarkAttendanceRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
}

func (r *BatchMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids must not be empty",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Status, []string{StatusPresent, StatusLate, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type RecordResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       string           `json:"date"`
	CheckIn    *string          `json:"check_in,omitempty"`
	CheckOut   *string          `json:"check_out,omitempty"`
	TotalHours *decimal.Decimal `json:"total_hours,omitempty"`
	Status     string           `json:"status"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(time.DateOnly),
		CheckIn:    formatTimePtr(rec.CheckIn),
		CheckOut:   formatTimePtr(rec.CheckOut),
		TotalHours: rec.TotalHours,
		Status:     rec.Status,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// Summary aggregates attendance over a date range. TotalDays is the inclusive
// day count of the range. PresentDays includes late days; LateDays tracks them
// separately for reporting.
type Summary struct {
	EmployeeID    string          `json:"employee_id"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalDays     int             `json:"total_days"`
	PresentDays   int             `json:"present_days"`
	LateDays      int             `json:"late_days"`
	AbsentDays    int             `json:"absent_days"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

// MonthlyCalendar maps every day of a month (1..last day) to its derived
// status, for calendar views.
type MonthlyCalendar struct {
	EmployeeID string            `json:"employee_id"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Days       map[int]DayStatus `json:"days"`
}

// BatchMarkResult reports per-employee outcomes of a batch mark. Individual
// failures never abort the batch.
type BatchMarkResult struct {
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Failures     map[string]string `json:"failures,omitempty"` // employee_id -> reason
}
