package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // employeeID|date
}

func key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(time.DateOnly)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[key(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error { return nil }

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records[key(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func newJobs(now time.Time, active ...employee.Employee) (*AttendanceJobs, *fakeAttendanceRepo) {
	attendanceRepo := &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
	jobs := NewAttendanceJobs(attendanceRepo, &fakeEmployeeRepo{active: active})
	jobs.now = func() time.Time { return now }
	return jobs, attendanceRepo
}

func hired(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMarkAbsentEmployees(t *testing.T) {
	// Tuesday 00:30 UTC: Monday the 16th is the day to settle.
	now := time.Date(2025, 6, 17, 0, 30, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	jobs, repo := newJobs(now,
		employee.Employee{ID: "emp-1", IsActive: true, HireDate: hired("2024-01-01")},
		employee.Employee{ID: "emp-2", IsActive: true, HireDate: hired("2024-01-01")},
		employee.Employee{ID: "emp-3", IsActive: true, HireDate: hired("2025-06-17")},
	)
	repo.records[key("emp-2", monday)] = attendance.Record{
		EmployeeID: "emp-2", Date: monday, Status: attendance.StatusPresent,
	}

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))

	// Recordless employee gets an explicit absent row.
	rec, ok := repo.records[key("emp-1", monday)]
	require.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)

	// The existing record is untouched.
	assert.Equal(t, attendance.StatusPresent, repo.records[key("emp-2", monday)].Status)

	// Hired after the day in question, nothing written.
	_, ok = repo.records[key("emp-3", monday)]
	assert.False(t, ok)
}

func TestMarkAbsentEmployees_OutsideMidnightWindow(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)
	jobs, repo := newJobs(now,
		employee.Employee{ID: "emp-1", IsActive: true, HireDate: hired("2024-01-01")},
	)

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, repo.records)
}

func TestMarkAbsentEmployees_WeekendSkipped(t *testing.T) {
	// Monday 00:30: yesterday is Sunday, never stored as absent.
	now := time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC)
	jobs, repo := newJobs(now,
		employee.Employee{ID: "emp-1", IsActive: true, HireDate: hired("2024-01-01")},
	)

	require.NoError(t, jobs.MarkAbsentEmployees(context.Background()))
	assert.Empty(t, repo.records)
}

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()

	var ran []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "failing")
		return errors.New("boom")
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		ran = append(ran, "second")
		return nil
	})

	// A failing job must not keep the remaining jobs from running.
	s.RunOnce(context.Background())
	assert.Equal(t, []string{"first", "failing", "second"}, ran)
}

func TestSchedulerRunOnce_TimeoutApplied(t *testing.T) {
	s := NewScheduler()

	var hadDeadline bool
	s.AddJob("deadline_check", time.Hour, func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, hadDeadline, "each run carries the job timeout")
}
