package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stored attendance statuses. Weekend and future days are never stored; they
// are derived on read (see DayStatus).
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// DayStatus is the derived status of a calendar day. For days with a stored
// record it mirrors the record's status verbatim.
type DayStatus string

const (
	DayPresent DayStatus = "present"
	DayLate    DayStatus = "late"
	DayAbsent  DayStatus = "absent"
	DayWeekend DayStatus = "weekend"
	DayFuture  DayStatus = "future"
)

// Record is one employee-day attendance row. At most one record exists per
// (employee, calendar day). TotalHours stays nil until check-out is recorded.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
