package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll periods, entries
// and salary records.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string) (Period, error)
	GetPeriodByMonth(ctx context.Context, year, month int) (Period, error)
	ListPeriods(ctx context.Context, year int) ([]Period, error)
	UpdatePeriodStatus(ctx context.Context, period Period) error

	// Entries
	// SaveEntryWithSalaryRecord inserts or overwrites the entry for
	// (period, employee) and the employee's current salary record in one
	// transaction. Upserts keep recomputation idempotent; the shared
	// transaction keeps the entry and the record from drifting apart.
	SaveEntryWithSalaryRecord(ctx context.Context, entry Entry, rec SalaryRecord) (Entry, error)
	GetEntry(ctx context.Context, periodID, employeeID string) (Entry, error)
	ListEntriesByPeriod(ctx context.Context, periodID string) ([]Entry, error)
	// ListEntriesByEmployeeAndYear returns all entries for the employee whose
	// period falls in the given year, for year-to-date totals.
	ListEntriesByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]Entry, error)
	// MarkEntriesPaid flips every entry of the period to paid in one
	// statement, stamping the payment date.
	MarkEntriesPaid(ctx context.Context, periodID string, paymentDate time.Time) error

	// Salary records
	GetSalaryRecordByEmployee(ctx context.Context, employeeID string) (SalaryRecord, error)
}
