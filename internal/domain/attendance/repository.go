package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a calendar
	// day. Used to prevent double check-in and to resolve day statuses.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// GetByEmployeeAndRange retrieves all records for an employee within
	// [start, end] inclusive, ordered by date ascending.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Record) error

	// Upsert writes the record for (employee, date), overwriting any existing
	// row. Used by administrative overrides.
	Upsert(ctx context.Context, record Record) (Record, error)
}
