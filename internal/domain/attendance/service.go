package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the daily check-in for an employee, deriving the
	// present/late status from the employee's assigned shift.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes today's record and computes total hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ResolveDayStatus derives the status of one calendar day for an employee.
	ResolveDayStatus(ctx context.Context, employeeID string, date time.Time) (DayStatus, error)

	// Summarize aggregates attendance over [start, end] inclusive.
	Summarize(ctx context.Context, employeeID string, start, end time.Time) (Summary, error)

	// MonthlyCalendar returns the day->status map for a whole month.
	MonthlyCalendar(ctx context.Context, employeeID string, year, month int) (MonthlyCalendar, error)

	// MarkAttendance is the administrative override. Marking any status,
	// including absent, writes an explicit record for that day.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, error)

	// BatchMarkAttendance marks many employees for one date. Each employee
	// succeeds or fails independently.
	BatchMarkAttendance(ctx context.Context, req BatchMarkAttendanceRequest) (BatchMarkResult, error)
}
