package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository

	// now is injected so lateness and future-day classification are testable.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		now:            time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.IsActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	now := s.now()
	today := dateOnly(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status, err := s.checkInStatus(ctx, emp, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Date:       today,
		CheckIn:    &now,
		Status:     status,
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("Employee checked in", "employee_id", emp.ID, "status", status)
	return attendance.ToRecordResponse(created), nil
}

// checkInStatus compares the check-in moment against the assigned shift
// start. Employees without a shift are never late.
func (s *AttendanceServiceImpl) checkInStatus(ctx context.Context, emp employee.Employee, now time.Time) (string, error) {
	if emp.ShiftID == nil {
		return attendance.StatusPresent, nil
	}

	sh, err := s.shiftRepo.GetByID(ctx, *emp.ShiftID)
	if err != nil {
		return "", fmt.Errorf("failed to get shift %s: %w", *emp.ShiftID, err)
	}

	if now.After(sh.StartOn(now)) {
		return attendance.StatusLate, nil
	}
	return attendance.StatusPresent, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today := dateOnly(now)

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	totalHours := decimal.NewFromFloat(now.Sub(*rec.CheckIn).Hours()).Round(2)
	rec.CheckOut = &now
	rec.TotalHours = &totalHours

	if err := s.attendanceRepo.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	slog.Info("Employee checked out", "employee_id", req.EmployeeID, "total_hours", totalHours)
	return attendance.ToRecordResponse(*rec), nil
}

// ResolveDayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ResolveDayStatus(ctx context.Context, employeeID string, date time.Time) (attendance.DayStatus, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return "", err
	}

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return "", fmt.Errorf("failed to get attendance record: %w", err)
	}

	return ResolveDayStatus(rec, date, s.now()), nil
}

// Summarize implements attendance.AttendanceService. TotalDays counts days
// with a stored record; period-scoped callers substitute the period length.
func (s *AttendanceServiceImpl) Summarize(ctx context.Context, employeeID string, start, end time.Time) (attendance.Summary, error) {
	start, end = dateOnly(start), dateOnly(end)
	if start.After(end) {
		return attendance.Summary{}, attendance.ErrInvalidRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Summary{}, err
	}

	maxRegular, err := s.maxRegularHours(ctx, emp)
	if err != nil {
		return attendance.Summary{}, err
	}

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	byDate := make(map[string]*attendance.Record, len(records))
	for i := range records {
		byDate[records[i].Date.Format(time.DateOnly)] = &records[i]
	}

	summary := attendance.Summary{
		EmployeeID: employeeID,
		StartDate:  start.Format(time.DateOnly),
		EndDate:    end.Format(time.DateOnly),
		TotalDays:  len(records),
	}

	today := s.now()
	maxRegularDec := decimal.NewFromInt(int64(maxRegular))

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rec := byDate[d.Format(time.DateOnly)]

		switch ResolveDayStatus(rec, d, today) {
		case attendance.DayPresent:
			summary.PresentDays++
		case attendance.DayLate:
			// A late arrival still counts as a worked day.
			summary.PresentDays++
			summary.LateDays++
		case attendance.DayAbsent:
			summary.AbsentDays++
		}

		if rec != nil && rec.TotalHours != nil {
			summary.TotalHours = summary.TotalHours.Add(*rec.TotalHours)
			if rec.TotalHours.GreaterThan(maxRegularDec) {
				summary.OvertimeHours = summary.OvertimeHours.Add(rec.TotalHours.Sub(maxRegularDec))
			}
		}
	}

	summary.RegularHours = summary.TotalHours.Sub(summary.OvertimeHours)
	return summary, nil
}

func (s *AttendanceServiceImpl) maxRegularHours(ctx context.Context, emp employee.Employee) (int, error) {
	if emp.ShiftID == nil {
		return shift.DefaultMaxRegularHours, nil
	}
	sh, err := s.shiftRepo.GetByID(ctx, *emp.ShiftID)
	if err != nil {
		return 0, fmt.Errorf("failed to get shift %s: %w", *emp.ShiftID, err)
	}
	return sh.MaxRegularHours, nil
}

// MonthlyCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyCalendar(ctx context.Context, employeeID string, year, month int) (attendance.MonthlyCalendar, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlyCalendar{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, employeeID, first, last)
	if err != nil {
		return attendance.MonthlyCalendar{}, fmt.Errorf("failed to get attendance records: %w", err)
	}

	byDay := make(map[int]*attendance.Record, len(records))
	for i := range records {
		byDay[records[i].Date.Day()] = &records[i]
	}

	today := s.now()
	days := make(map[int]attendance.DayStatus, last.Day())
	for day := 1; day <= last.Day(); day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		days[day] = ResolveDayStatus(byDay[day], d, today)
	}

	return attendance.MonthlyCalendar{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Days:       days,
	}, nil
}

// MarkAttendance implements attendance.AttendanceService. Marking any status
// writes an explicit record for that day, overwriting the existing one.
// Marking absent never deletes: the stored absent row keeps day resolution
// and the audit trail stable.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	rec := attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
	}

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	slog.Info("Attendance marked", "employee_id", req.EmployeeID, "date", req.Date, "status", req.Status)
	return attendance.ToRecordResponse(saved), nil
}

// BatchMarkAttendance implements attendance.AttendanceService. Each employee
// is marked independently; a failure is tallied and the batch continues.
func (s *AttendanceServiceImpl) BatchMarkAttendance(ctx context.Context, req attendance.BatchMarkAttendanceRequest) (attendance.BatchMarkResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchMarkResult{}, err
	}

	result := attendance.BatchMarkResult{Failures: make(map[string]string)}

	for _, employeeID := range req.EmployeeIDs {
		_, err := s.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
			EmployeeID: employeeID,
			Date:       req.Date,
			Status:     req.Status,
		})
		if err != nil {
			result.FailureCount++
			result.Failures[employeeID] = err.Error()
			slog.Warn("Batch mark failed for employee", "employee_id", employeeID, "error", err)
			continue
		}
		result.SuccessCount++
	}

	if result.FailureCount == 0 {
		result.Failures = nil
	}
	return result, nil
}
