package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/payroll"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const periodColumns = `
	id, year, month, start_date, end_date, payment_date, status,
	approved_by, approved_at, processed_by, processed_at, created_at, updated_at
`

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(
		&p.ID, &p.Year, &p.Month, &p.StartDate, &p.EndDate, &p.PaymentDate,
		&p.Status, &p.ApprovedBy, &p.ApprovedAt, &p.ProcessedBy, &p.ProcessedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const entryColumns = `
	pe.id, pe.period_id, pe.employee_id, pe.basic_salary, pe.total_allowances,
	pe.overtime_pay, pe.total_deductions, pe.tax_deductions, pe.insurance_amount,
	pe.absence_deduction, pe.gross_salary, pe.net_salary, pe.present_days,
	pe.total_days, pe.payment_status, pe.payment_date, pe.created_at, pe.updated_at,
	e.full_name AS employee_name, e.code AS employee_code,
	d.name AS department_name, p.name AS position_name
`

const entryJoins = `
	JOIN employees e ON e.id = pe.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanEntry(row pgx.Row) (payroll.Entry, error) {
	var en payroll.Entry
	err := row.Scan(
		&en.ID, &en.PeriodID, &en.EmployeeID, &en.BasicSalary, &en.TotalAllowances,
		&en.OvertimePay, &en.TotalDeductions, &en.TaxDeductions, &en.InsuranceAmount,
		&en.AbsenceDeduction, &en.GrossSalary, &en.NetSalary, &en.PresentDays,
		&en.TotalDays, &en.PaymentStatus, &en.PaymentDate, &en.CreatedAt, &en.UpdatedAt,
		&en.EmployeeName, &en.EmployeeCode, &en.DepartmentName, &en.PositionName,
	)
	return en, err
}

// CreatePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (id, year, month, start_date, end_date, payment_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.ID, period.Year, period.Month, period.StartDate, period.EndDate,
		period.PaymentDate, period.Status,
	).Scan(&period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_period_year_month") {
			return payroll.Period{}, payroll.ErrPeriodExists
		}
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return period, nil
}

// GetPeriodByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1`

	period, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return period, nil
}

// GetPeriodByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) GetPeriodByMonth(ctx context.Context, year, month int) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE year = $1 AND month = $2`

	period, err := scanPeriod(q.QueryRow(ctx, query, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period by month: %w", err)
	}

	return period, nil
}

// ListPeriods implements payroll.PayrollRepository.
func (r *payrollRepository) ListPeriods(ctx context.Context, year int) ([]payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE year = $1 ORDER BY month`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.Period
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// UpdatePeriodStatus implements payroll.PayrollRepository.
func (r *payrollRepository) UpdatePeriodStatus(ctx context.Context, period payroll.Period) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $2, approved_by = $3, approved_at = $4,
			processed_by = $5, processed_at = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		period.ID, period.Status, period.ApprovedBy, period.ApprovedAt,
		period.ProcessedBy, period.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

// SaveEntryWithSalaryRecord implements payroll.PayrollRepository. Both
// upserts run in one transaction so a failure leaves neither row behind.
func (r *payrollRepository) SaveEntryWithSalaryRecord(ctx context.Context, entry payroll.Entry, rec payroll.SalaryRecord) (payroll.Entry, error) {
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		var err error
		entry, err = r.upsertEntry(ctx, entry)
		if err != nil {
			return err
		}
		_, err = r.upsertSalaryRecord(ctx, rec)
		return err
	})
	if err != nil {
		return payroll.Entry{}, err
	}
	return entry, nil
}

func (r *payrollRepository) upsertEntry(ctx context.Context, entry payroll.Entry) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			id, period_id, employee_id, basic_salary, total_allowances,
			overtime_pay, total_deductions, tax_deductions, insurance_amount,
			absence_deduction, gross_salary, net_salary, present_days,
			total_days, payment_status, payment_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (period_id, employee_id) DO UPDATE
		SET basic_salary = EXCLUDED.basic_salary,
			total_allowances = EXCLUDED.total_allowances,
			overtime_pay = EXCLUDED.overtime_pay,
			total_deductions = EXCLUDED.total_deductions,
			tax_deductions = EXCLUDED.tax_deductions,
			insurance_amount = EXCLUDED.insurance_amount,
			absence_deduction = EXCLUDED.absence_deduction,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			present_days = EXCLUDED.present_days,
			total_days = EXCLUDED.total_days,
			payment_status = EXCLUDED.payment_status,
			payment_date = EXCLUDED.payment_date,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.PeriodID, entry.EmployeeID, entry.BasicSalary, entry.TotalAllowances,
		entry.OvertimePay, entry.TotalDeductions, entry.TaxDeductions, entry.InsuranceAmount,
		entry.AbsenceDeduction, entry.GrossSalary, entry.NetSalary, entry.PresentDays,
		entry.TotalDays, entry.PaymentStatus, entry.PaymentDate,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return payroll.Entry{}, fmt.Errorf("failed to upsert payroll entry: %w", err)
	}

	return entry, nil
}

// GetEntry implements payroll.PayrollRepository.
func (r *payrollRepository) GetEntry(ctx context.Context, periodID, employeeID string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM payroll_entries pe ` + entryJoins + `
		WHERE pe.period_id = $1 AND pe.employee_id = $2`

	entry, err := scanEntry(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

// ListEntriesByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ListEntriesByPeriod(ctx context.Context, periodID string) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM payroll_entries pe ` + entryJoins + `
		WHERE pe.period_id = $1
		ORDER BY e.code`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListEntriesByEmployeeAndYear implements payroll.PayrollRepository.
func (r *payrollRepository) ListEntriesByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM payroll_entries pe ` + entryJoins + `
		JOIN payroll_periods pp ON pp.id = pe.period_id
		WHERE pe.employee_id = $1 AND pp.year = $2
		ORDER BY pp.month`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries by year: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// MarkEntriesPaid implements payroll.PayrollRepository.
func (r *payrollRepository) MarkEntriesPaid(ctx context.Context, periodID string, paymentDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET payment_status = $2, payment_date = $3, updated_at = NOW()
		WHERE period_id = $1 AND payment_status = $4
	`

	_, err := q.Exec(ctx, query, periodID, payroll.PaymentStatusPaid, paymentDate, payroll.PaymentStatusUnpaid)
	if err != nil {
		return fmt.Errorf("failed to mark payroll entries paid: %w", err)
	}

	return nil
}

func (r *payrollRepository) upsertSalaryRecord(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			id, employee_id, base_salary, bonuses, deductions, overtime_pay, total
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
			bonuses = EXCLUDED.bonuses,
			deductions = EXCLUDED.deductions,
			overtime_pay = EXCLUDED.overtime_pay,
			total = EXCLUDED.total,
			updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.BaseSalary, rec.Bonuses, rec.Deductions,
		rec.OvertimePay, rec.Total,
	).Scan(&rec.ID, &rec.UpdatedAt)
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return rec, nil
}

// GetSalaryRecordByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) GetSalaryRecordByEmployee(ctx context.Context, employeeID string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, base_salary, bonuses, deductions, overtime_pay, total, updated_at
		FROM salary_records WHERE employee_id = $1
	`

	var rec payroll.SalaryRecord
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.BaseSalary, &rec.Bonuses, &rec.Deductions,
		&rec.OvertimePay, &rec.Total, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}
