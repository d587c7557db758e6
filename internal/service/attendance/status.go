package attendance

import (
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
)

// ResolveDayStatus derives the status of one calendar day. A stored record
// wins verbatim; otherwise weekends, then future days, then absence.
func ResolveDayStatus(rec *attendance.Record, date time.Time, today time.Time) attendance.DayStatus {
	if rec != nil {
		return attendance.DayStatus(rec.Status)
	}
	if isWeekend(date) {
		return attendance.DayWeekend
	}
	if dateOnly(date).After(dateOnly(today)) {
		return attendance.DayFuture
	}
	return attendance.DayAbsent
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// dateOnly strips the time-of-day part, keeping the location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
