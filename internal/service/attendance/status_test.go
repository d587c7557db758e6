package attendance

import (
	"testing"
	"time"

	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveDayStatus(t *testing.T) {
	today := day("2025-06-18") // a Wednesday

	tests := []struct {
		name string
		rec  *attendance.Record
		date time.Time
		want attendance.DayStatus
	}{
		{
			name: "stored present record wins",
			rec:  &attendance.Record{Status: attendance.StatusPresent},
			date: day("2025-06-16"),
			want: attendance.DayPresent,
		},
		{
			name: "stored late record wins",
			rec:  &attendance.Record{Status: attendance.StatusLate},
			date: day("2025-06-16"),
			want: attendance.DayLate,
		},
		{
			name: "stored record wins even on a weekend",
			rec:  &attendance.Record{Status: attendance.StatusPresent},
			date: day("2025-06-14"), // Saturday
			want: attendance.DayPresent,
		},
		{
			name: "stored absent record wins over weekend derivation",
			rec:  &attendance.Record{Status: attendance.StatusAbsent},
			date: day("2025-06-15"), // Sunday
			want: attendance.DayAbsent,
		},
		{
			name: "saturday without record",
			date: day("2025-06-14"),
			want: attendance.DayWeekend,
		},
		{
			name: "sunday without record",
			date: day("2025-06-15"),
			want: attendance.DayWeekend,
		},
		{
			name: "future weekday without record",
			date: day("2025-06-20"),
			want: attendance.DayFuture,
		},
		{
			name: "past weekday without record",
			date: day("2025-06-16"),
			want: attendance.DayAbsent,
		},
		{
			name: "today without record counts absent, not future",
			date: day("2025-06-18"),
			want: attendance.DayAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDayStatus(tt.rec, tt.date, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDayStatus_TimeOfDayIgnored(t *testing.T) {
	// Late-evening "now" must not push today's earlier hours into the future.
	now := time.Date(2025, 6, 18, 23, 30, 0, 0, time.UTC)
	date := time.Date(2025, 6, 18, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, attendance.DayAbsent, ResolveDayStatus(nil, date, now))
}
