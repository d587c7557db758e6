package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("no check-in recorded for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("invalid attendance status")
	ErrInvalidRange   = errors.New("start date must not be after end date")
)
