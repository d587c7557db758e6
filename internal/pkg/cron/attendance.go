package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees writes an explicit absent record for every active
// employee who has no attendance record for the previous workday. Weekends
// are skipped; they are derived at read time and never stored.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if j.now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := j.now().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return err
	}

	marked := 0
	for _, emp := range employees {
		// Hired after the day in question, nothing to mark
		if emp.HireDate.After(yesterday) {
			continue
		}

		rec, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to look up attendance",
				"employee_id", emp.ID, "date", yesterday.Format(time.DateOnly), "error", err)
			continue
		}
		if rec != nil {
			continue
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Record{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", emp.ID, "date", yesterday.Format(time.DateOnly), "error", err)
			continue
		}

		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked, "date", yesterday.Format(time.DateOnly))
	return nil
}
