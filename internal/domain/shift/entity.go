package shift

import "time"

// Shift is a same-day working window. StartTime and EndTime carry only the
// time-of-day part; overnight shifts are not modeled.
type Shift struct {
	ID              string
	Name            string
	StartTime       time.Time
	EndTime         time.Time
	MaxRegularHours int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultMaxRegularHours applies when an employee has no assigned shift.
const DefaultMaxRegularHours = 8

// StartOn anchors the shift start on the given calendar day, in that day's
// location. Used for lateness checks at check-in.
func (s Shift) StartOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, day.Location())
}
