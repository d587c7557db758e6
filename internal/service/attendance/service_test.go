package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // employeeID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(time.DateOnly)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[recordKey(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	f.records[recordKey(rec.EmployeeID, rec.Date)] = rec
	return nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	key := recordKey(rec.EmployeeID, rec.Date)
	if existing, ok := f.records[key]; ok {
		rec.ID = existing.ID
	}
	f.records[key] = rec
	return rec, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.Shift, error) { return nil, nil }

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error { return nil }

// ========== FIXTURES ==========

const morningShiftID = "shift-morning"

// Weekday 09:00-17:00 shift.
func morningShift() shift.Shift {
	return shift.Shift{
		ID:              morningShiftID,
		Name:            "Morning",
		StartTime:       time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:         time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		MaxRegularHours: 8,
	}
}

func activeEmployee(id string, shiftID *string) employee.Employee {
	return employee.Employee{
		ID:       id,
		Code:     "EMP-" + id,
		FullName: "Employee " + id,
		ShiftID:  shiftID,
		IsActive: true,
	}
}

func strPtr(s string) *string { return &s }

func newTestService(now time.Time, emps ...employee.Employee) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	shiftRepo := &fakeShiftRepo{shifts: map[string]shift.Shift{morningShiftID: morningShift()}}

	svc := NewAttendanceService(attendanceRepo, newFakeEmployeeRepo(emps...), shiftRepo).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, attendanceRepo
}

// ========== CHECK-IN ==========

func TestCheckIn_BeforeShiftStartIsPresent(t *testing.T) {
	now := time.Date(2025, 6, 16, 8, 55, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", strPtr(morningShiftID)))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Equal(t, "2025-06-16", resp.Date)
	require.NotNil(t, resp.CheckIn)
}

func TestCheckIn_AfterShiftStartIsLate(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 5, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", strPtr(morningShiftID)))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, resp.Status)
}

func TestCheckIn_NoShiftNeverLate(t *testing.T) {
	now := time.Date(2025, 6, 16, 11, 30, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	emp := activeEmployee("emp-1", nil)
	emp.IsActive = false
	svc, _ := newTestService(now, emp)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckIn_Twice(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ========== CHECK-OUT ==========

func TestCheckOut_ComputesTotalHours(t *testing.T) {
	checkIn := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(checkIn, activeEmployee("emp-1", strPtr(morningShiftID)))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC) }

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, resp.TotalHours)
	assert.True(t, decimal.NewFromFloat(8.5).Equal(*resp.TotalHours), "hours = %s", resp.TotalHours)
	require.NotNil(t, resp.CheckOut)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	now := time.Date(2025, 6, 16, 17, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	now := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 6, 16, 17, 0, 0, 0, time.UTC) }
	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

// ========== SUMMARIZE ==========

func TestSummarize(t *testing.T) {
	// Mon 16th..Fri 20th, evaluated Thursday noon.
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now, activeEmployee("emp-1", nil))

	hours := func(f float64) *decimal.Decimal {
		d := decimal.NewFromFloat(f)
		return &d
	}
	repo.records["emp-1|2025-06-16"] = attendance.Record{
		EmployeeID: "emp-1", Date: day("2025-06-16"),
		Status: attendance.StatusPresent, TotalHours: hours(9.5),
	}
	repo.records["emp-1|2025-06-17"] = attendance.Record{
		EmployeeID: "emp-1", Date: day("2025-06-17"),
		Status: attendance.StatusLate, TotalHours: hours(8),
	}
	repo.records["emp-1|2025-06-18"] = attendance.Record{
		EmployeeID: "emp-1", Date: day("2025-06-18"),
		Status: attendance.StatusAbsent,
	}

	summary, err := svc.Summarize(context.Background(), "emp-1", day("2025-06-16"), day("2025-06-20"))
	require.NoError(t, err)

	// Late still counts as a worked day.
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	// Stored absent Wednesday plus recordless Thursday.
	assert.Equal(t, 2, summary.AbsentDays)
	assert.Equal(t, 3, summary.TotalDays)

	assert.True(t, decimal.NewFromFloat(17.5).Equal(summary.TotalHours), "total = %s", summary.TotalHours)
	// Monday's 9.5h exceeds the 8h default by 1.5.
	assert.True(t, decimal.NewFromFloat(1.5).Equal(summary.OvertimeHours), "overtime = %s", summary.OvertimeHours)
	assert.True(t, decimal.NewFromFloat(16).Equal(summary.RegularHours), "regular = %s", summary.RegularHours)
}

func TestSummarize_WeekendsNotCounted(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	// Sat 14th..Sun 15th, no records.
	summary, err := svc.Summarize(context.Background(), "emp-1", day("2025-06-14"), day("2025-06-15"))
	require.NoError(t, err)

	assert.Zero(t, summary.PresentDays)
	assert.Zero(t, summary.AbsentDays)
	assert.Zero(t, summary.TotalDays)
}

func TestSummarize_InvalidRange(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil))

	_, err := svc.Summarize(context.Background(), "emp-1", day("2025-06-20"), day("2025-06-16"))
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)
}

// ========== MARK ==========

func TestMarkAttendance_OverwritesExisting(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now, activeEmployee("emp-1", nil))

	first, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-06-16", Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	second, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-06-16", Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	// Same row corrected, not duplicated.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusPresent, second.Status)
	assert.Len(t, repo.records, 1)
}

func TestMarkAttendance_AbsentKeepsRecord(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now, activeEmployee("emp-1", nil))

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2025-06-16", Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	rec, ok := repo.records["emp-1|2025-06-16"]
	require.True(t, ok, "marking absent stores an explicit row")
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestBatchMarkAttendance_PartialFailure(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now,
		activeEmployee("emp-1", nil),
		activeEmployee("emp-2", nil),
	)

	result, err := svc.BatchMarkAttendance(context.Background(), attendance.BatchMarkAttendanceRequest{
		EmployeeIDs: []string{"emp-1", "ghost", "emp-2"},
		Date:        "2025-06-16",
		Status:      attendance.StatusPresent,
	})
	require.NoError(t, err, "one employee failing must not abort the batch")

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Contains(t, result.Failures, "ghost")
	assert.Len(t, repo.records, 2)
}

func TestBatchMarkAttendance_AllSucceed(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now, activeEmployee("emp-1", nil), activeEmployee("emp-2", nil))

	result, err := svc.BatchMarkAttendance(context.Background(), attendance.BatchMarkAttendanceRequest{
		EmployeeIDs: []string{"emp-1", "emp-2"},
		Date:        "2025-06-16",
		Status:      attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Nil(t, result.Failures)
}

// ========== CALENDAR ==========

func TestMonthlyCalendar(t *testing.T) {
	now := time.Date(2025, 6, 19, 12, 0, 0, 0, time.Local)
	svc, repo := newTestService(now, activeEmployee("emp-1", nil))

	repo.records["emp-1|2025-06-16"] = attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local),
		Status:     attendance.StatusPresent,
	}

	cal, err := svc.MonthlyCalendar(context.Background(), "emp-1", 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 2025, cal.Year)
	assert.Equal(t, 6, cal.Month)
	assert.Len(t, cal.Days, 30)

	assert.Equal(t, attendance.DayPresent, cal.Days[16])
	assert.Equal(t, attendance.DayWeekend, cal.Days[14])
	assert.Equal(t, attendance.DayAbsent, cal.Days[17])
	assert.Equal(t, attendance.DayFuture, cal.Days[20])
}
