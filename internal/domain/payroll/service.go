package payroll

import "context"

// Event names emitted by the payroll service. Collaborators register
// callbacks instead of the service reaching into any UI layer.
const (
	EventSalaryUpdated    = "salary_updated"
	EventPaymentProcessed = "payment_processed"
)

// Listener receives payroll events. payload is the affected entry or salary
// record.
type Listener func(event string, payload interface{})

// PayrollService defines the payroll computation pipeline.
type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, year int) ([]PeriodResponse, error)
	ApprovePeriod(ctx context.Context, id string, approvedBy string) (PeriodResponse, error)
	ProcessPeriod(ctx context.Context, id string, processedBy string) (PeriodResponse, error)

	// CalculateSalary runs the full pipeline for one employee and persists the
	// entry. Recomputing with unchanged inputs yields an identical result and
	// overwrites rather than duplicates.
	CalculateSalary(ctx context.Context, employeeID, periodID string) (SalaryBreakdown, error)

	// GeneratePayroll runs CalculateSalary for every active employee.
	// Per-employee failures are tallied, not raised.
	GeneratePayroll(ctx context.Context, periodID string) (GeneratePayrollResult, error)

	// GeneratePayslip reads the stored entry (computing it first only if
	// missing) and attaches identity and year-to-date totals.
	GeneratePayslip(ctx context.Context, employeeID, periodID string) (Payslip, error)

	// CalculateSalaryProjections forecasts 12 months of salary cost per
	// department, without attendance or tax.
	CalculateSalaryProjections(ctx context.Context, year int, opts ProjectionOptions) (ProjectionResult, error)

	// Subscribe registers a listener for payroll events.
	Subscribe(l Listener)
}
