package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/config"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/payroll"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	overtimeRepo overtime.OvertimeRepository
	benefitRepo  benefit.BenefitRepository
	taxRepo      tax.TaxRepository

	attendanceSvc attendance.AttendanceService

	taxCalc       *TaxCalculator
	insuranceCalc *InsuranceCalculator
	overtimeCalc  *OvertimeCalculator
	benefits      *BenefitsResolver

	listeners []payroll.Listener
	mu        sync.RWMutex

	now func() time.Time
}

func NewPayrollService(
	cfg config.PayrollConfig,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	overtimeRepo overtime.OvertimeRepository,
	benefitRepo benefit.BenefitRepository,
	taxRepo tax.TaxRepository,
	attendanceSvc attendance.AttendanceService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		overtimeRepo:  overtimeRepo,
		benefitRepo:   benefitRepo,
		taxRepo:       taxRepo,
		attendanceSvc: attendanceSvc,
		taxCalc:       NewTaxCalculator(),
		insuranceCalc: NewInsuranceCalculator(cfg.InsuranceRate, cfg.InsuranceCap),
		overtimeCalc:  NewOvertimeCalculator(cfg.WorkingDaysPerMonth, cfg.ShiftHoursPerDay),
		benefits:      NewBenefitsResolver(),
		now:           time.Now,
	}
}

// Subscribe implements payroll.PayrollService.
func (s *PayrollServiceImpl) Subscribe(l payroll.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *PayrollServiceImpl) emit(event string, payload interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listeners {
		l(event, payload)
	}
}

// ========== PERIODS ==========

// CreatePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	if _, err := s.payrollRepo.GetPeriodByMonth(ctx, req.Year, req.Month); err == nil {
		return payroll.PeriodResponse{}, payroll.ErrPeriodExists
	} else if !errors.Is(err, payroll.ErrPeriodNotFound) {
		return payroll.PeriodResponse{}, err
	}

	startDate, _ := time.Parse(time.DateOnly, req.StartDate)
	endDate, _ := time.Parse(time.DateOnly, req.EndDate)
	paymentDate, _ := time.Parse(time.DateOnly, req.PaymentDate)

	period := payroll.Period{
		ID:          uuid.NewString(),
		Year:        req.Year,
		Month:       req.Month,
		StartDate:   startDate,
		EndDate:     endDate,
		PaymentDate: paymentDate,
		Status:      payroll.PeriodStatusDraft,
	}

	created, err := s.payrollRepo.CreatePeriod(ctx, period)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return payroll.ToPeriodResponse(created), nil
}

// GetPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

// ListPeriods implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, year int) ([]payroll.PeriodResponse, error) {
	periods, err := s.payrollRepo.ListPeriods(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.ToPeriodResponse(p))
	}
	return responses, nil
}

// ApprovePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ApprovePeriod(ctx context.Context, id string, approvedBy string) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	if period.Status != payroll.PeriodStatusDraft {
		return payroll.PeriodResponse{}, payroll.ErrPeriodNotDraft
	}

	now := s.now()
	period.Status = payroll.PeriodStatusApproved
	period.ApprovedBy = &approvedBy
	period.ApprovedAt = &now

	if err := s.payrollRepo.UpdatePeriodStatus(ctx, period); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to approve period: %w", err)
	}

	slog.Info("Payroll period approved", "period_id", id, "approved_by", approvedBy)
	return payroll.ToPeriodResponse(period), nil
}

// ProcessPeriod implements payroll.PayrollService. Processing marks the
// period's entries paid and emits payment_processed.
func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, id string, processedBy string) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	if period.Status == payroll.PeriodStatusProcessed {
		return payroll.PeriodResponse{}, payroll.ErrPeriodProcessed
	}
	if period.Status != payroll.PeriodStatusApproved {
		return payroll.PeriodResponse{}, payroll.ErrPeriodNotApproved
	}

	now := s.now()
	if err := s.payrollRepo.MarkEntriesPaid(ctx, period.ID, period.PaymentDate); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to mark entries paid: %w", err)
	}

	period.Status = payroll.PeriodStatusProcessed
	period.ProcessedBy = &processedBy
	period.ProcessedAt = &now

	if err := s.payrollRepo.UpdatePeriodStatus(ctx, period); err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("failed to process period: %w", err)
	}

	slog.Info("Payroll period processed", "period_id", id, "processed_by", processedBy)
	s.emit(payroll.EventPaymentProcessed, payroll.ToPeriodResponse(period))
	return payroll.ToPeriodResponse(period), nil
}

// ========== SALARY CALCULATION ==========

// CalculateSalary implements payroll.PayrollService.
func (s *PayrollServiceImpl) CalculateSalary(ctx context.Context, employeeID, periodID string) (payroll.SalaryBreakdown, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}
	if period.Status == payroll.PeriodStatusProcessed {
		return payroll.SalaryBreakdown{}, payroll.ErrPeriodProcessed
	}

	breakdown, err := s.computeSalary(ctx, emp, period)
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	if err := s.persistEntry(ctx, breakdown); err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	return breakdown, nil
}

// computeSalary runs the computation pipeline without persisting.
func (s *PayrollServiceImpl) computeSalary(ctx context.Context, emp employee.Employee, period payroll.Period) (payroll.SalaryBreakdown, error) {
	// 1. Attendance over the full period. TotalDays is the period length so
	// absence deductions count every unworked day, not only recorded ones.
	summary, err := s.attendanceSvc.Summarize(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	summary.TotalDays = period.TotalDays()

	totalDays := decimal.NewFromInt(int64(summary.TotalDays))
	absentDays := decimal.NewFromInt(int64(summary.TotalDays - summary.PresentDays))

	// 2. Pro-rata daily-rate deduction for unworked days. Late days count as
	// present and are never deducted.
	absenceDeduction := emp.BasicSalary.Div(totalDays).Mul(absentDays)

	// 3. Overtime pay over approved records only.
	overtimeRecords, err := s.overtimeRepo.GetApprovedByEmployeeAndRange(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to get overtime records: %w", err)
	}
	overtimePay := s.overtimeCalc.Pay(emp.BasicSalary, overtimeRecords)

	// 4. Recurring benefits and deductions active at period end.
	items, err := s.benefitRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.SalaryBreakdown{}, fmt.Errorf("failed to get benefit items: %w", err)
	}
	totalBenefits, totalDeductions := s.benefits.Resolve(items, emp.BasicSalary, period.EndDate)

	// 5. Gross salary.
	grossSalary := emp.BasicSalary.Add(totalBenefits).Add(overtimePay)

	// 6. Progressive tax on gross.
	brackets, err := s.taxRepo.GetBracketsByYear(ctx, period.Year)
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}
	taxDeductions := s.taxCalc.Calculate(grossSalary, brackets)

	// Social insurance on basic salary, capped base.
	insuranceAmount := s.insuranceCalc.Calculate(emp.BasicSalary)

	// 7. Net salary.
	netSalary := grossSalary.
		Sub(totalDeductions).
		Sub(taxDeductions).
		Sub(insuranceAmount).
		Sub(absenceDeduction)

	return payroll.SalaryBreakdown{
		EmployeeID:       emp.ID,
		PeriodID:         period.ID,
		BasicSalary:      emp.BasicSalary.Round(2),
		Attendance:       summary,
		OvertimePay:      overtimePay.Round(2),
		TotalBenefits:    totalBenefits.Round(2),
		TotalDeductions:  totalDeductions.Round(2),
		TaxDeductions:    taxDeductions.Round(2),
		InsuranceAmount:  insuranceAmount.Round(2),
		AbsenceDeduction: absenceDeduction.Round(2),
		GrossSalary:      grossSalary.Round(2),
		NetSalary:        netSalary.Round(2),
	}, nil
}

// persistEntry writes the payroll entry and the employee's current salary
// record, then notifies subscribers. Upserts keep recomputation idempotent.
func (s *PayrollServiceImpl) persistEntry(ctx context.Context, b payroll.SalaryBreakdown) error {
	entry := payroll.Entry{
		ID:               uuid.NewString(),
		PeriodID:         b.PeriodID,
		EmployeeID:       b.EmployeeID,
		BasicSalary:      b.BasicSalary,
		TotalAllowances:  b.TotalBenefits,
		OvertimePay:      b.OvertimePay,
		TotalDeductions:  b.TotalDeductions,
		TaxDeductions:    b.TaxDeductions,
		InsuranceAmount:  b.InsuranceAmount,
		AbsenceDeduction: b.AbsenceDeduction,
		GrossSalary:      b.GrossSalary,
		NetSalary:        b.NetSalary,
		PresentDays:      b.Attendance.PresentDays,
		TotalDays:        b.Attendance.TotalDays,
		PaymentStatus:    payroll.PaymentStatusUnpaid,
	}

	record := payroll.SalaryRecord{
		ID:          uuid.NewString(),
		EmployeeID:  b.EmployeeID,
		BaseSalary:  b.BasicSalary,
		Bonuses:     b.TotalBenefits,
		Deductions:  b.TotalDeductions,
		OvertimePay: b.OvertimePay,
		Total:       b.BasicSalary.Add(b.TotalBenefits).Add(b.OvertimePay).Sub(b.TotalDeductions),
	}

	saved, err := s.payrollRepo.SaveEntryWithSalaryRecord(ctx, entry, record)
	if err != nil {
		return fmt.Errorf("failed to save payroll entry: %w", err)
	}

	s.emit(payroll.EventSalaryUpdated, payroll.ToEntryResponse(saved))
	return nil
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, periodID string) (payroll.GeneratePayrollResult, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.GeneratePayrollResult{}, err
	}
	if period.Status == payroll.PeriodStatusProcessed {
		return payroll.GeneratePayrollResult{}, payroll.ErrPeriodProcessed
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.GeneratePayrollResult{}, fmt.Errorf("failed to get active employees: %w", err)
	}

	result := payroll.GeneratePayrollResult{
		PeriodID: periodID,
		Failures: make(map[string]string),
	}

	for _, emp := range employees {
		breakdown, err := s.computeSalary(ctx, emp, period)
		if err == nil {
			err = s.persistEntry(ctx, breakdown)
		}
		if err != nil {
			result.FailureCount++
			result.Failures[emp.ID] = err.Error()
			slog.Warn("Payroll generation failed for employee", "employee_id", emp.ID, "period_id", periodID, "error", err)
			continue
		}

		entry, err := s.payrollRepo.GetEntry(ctx, periodID, emp.ID)
		if err != nil {
			result.FailureCount++
			result.Failures[emp.ID] = err.Error()
			continue
		}

		result.SuccessCount++
		result.Entries = append(result.Entries, payroll.ToEntryResponse(entry))
	}

	if result.FailureCount == 0 {
		result.Failures = nil
	}

	slog.Info("Payroll generated", "period_id", periodID, "success", result.SuccessCount, "failed", result.FailureCount)
	return result, nil
}

// ========== PAYSLIP ==========

// GeneratePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	entry, err := s.payrollRepo.GetEntry(ctx, periodID, employeeID)
	if errors.Is(err, payroll.ErrEntryNotFound) {
		// No stored entry yet: compute once, then read it back.
		if _, err := s.CalculateSalary(ctx, employeeID, periodID); err != nil {
			return payroll.Payslip{}, err
		}
		entry, err = s.payrollRepo.GetEntry(ctx, periodID, employeeID)
		if err != nil {
			return payroll.Payslip{}, err
		}
	} else if err != nil {
		return payroll.Payslip{}, err
	}

	ytd, err := s.yearToDate(ctx, employeeID, period.Year)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.Payslip{
		Employee: payroll.PayslipEmployee{
			ID:             emp.ID,
			Code:           emp.Code,
			FullName:       emp.FullName,
			DepartmentName: emp.DepartmentName,
			PositionName:   emp.PositionName,
		},
		Period:     payroll.ToPeriodResponse(period),
		Entry:      payroll.ToEntryResponse(entry),
		YearToDate: ytd,
	}, nil
}

func (s *PayrollServiceImpl) yearToDate(ctx context.Context, employeeID string, year int) (payroll.YearToDate, error) {
	entries, err := s.payrollRepo.ListEntriesByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return payroll.YearToDate{}, fmt.Errorf("failed to list year entries: %w", err)
	}

	ytd := payroll.YearToDate{Gross: decimal.Zero, Tax: decimal.Zero, Net: decimal.Zero}
	for _, e := range entries {
		ytd.Gross = ytd.Gross.Add(e.GrossSalary)
		ytd.Tax = ytd.Tax.Add(e.TaxDeductions)
		ytd.Net = ytd.Net.Add(e.NetSalary)
	}
	return ytd, nil
}

// ========== PROJECTIONS ==========

// CalculateSalaryProjections implements payroll.PayrollService. Projections
// only cover base salary, allowances and deductions; no attendance, no tax.
func (s *PayrollServiceImpl) CalculateSalaryProjections(ctx context.Context, year int, opts payroll.ProjectionOptions) (payroll.ProjectionResult, error) {
	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.ProjectionResult{}, fmt.Errorf("failed to get active employees: %w", err)
	}

	type bucket struct {
		name    *string
		monthly [12]decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, emp := range employees {
		if opts.DepartmentID != nil && emp.DepartmentID != *opts.DepartmentID {
			continue
		}

		items, err := s.benefitRepo.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return payroll.ProjectionResult{}, fmt.Errorf("failed to get benefit items: %w", err)
		}

		b, ok := buckets[emp.DepartmentID]
		if !ok {
			b = &bucket{name: emp.DepartmentName}
			buckets[emp.DepartmentID] = b
			order = append(order, emp.DepartmentID)
		}

		for month := 1; month <= 12; month++ {
			// Evaluate item activity at each month's last day.
			monthEnd := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
			benefits, deductions := s.benefits.Resolve(items, emp.BasicSalary, monthEnd)
			cost := emp.BasicSalary.Add(benefits).Sub(deductions)
			b.monthly[month-1] = b.monthly[month-1].Add(cost)
		}
	}

	result := payroll.ProjectionResult{Year: year}
	for _, deptID := range order {
		b := buckets[deptID]
		proj := payroll.DepartmentProjection{
			DepartmentID:   deptID,
			DepartmentName: b.name,
			Monthly:        make([]decimal.Decimal, 12),
			AnnualTotal:    decimal.Zero,
		}
		for i, amount := range b.monthly {
			proj.Monthly[i] = amount.Round(2)
			proj.AnnualTotal = proj.AnnualTotal.Add(amount)
		}
		proj.AnnualTotal = proj.AnnualTotal.Round(2)
		result.Departments = append(result.Departments, proj)
	}

	return result, nil
}
