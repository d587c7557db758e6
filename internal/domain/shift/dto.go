package shift

import (
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name            string `json:"name"`
	StartTime       string `json:"start_time"` // "08:00"
	EndTime         string `json:"end_time"`   // "17:00"
	MaxRegularHours int    `json:"max_regular_hours"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	start, okStart := validator.IsValidTimeOfDay(r.StartTime)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	end, okEnd := validator.IsValidTimeOfDay(r.EndTime)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if okStart && okEnd && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be after start_time"})
	}

	if r.MaxRegularHours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "max_regular_hours", Message: "max_regular_hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	MaxRegularHours int    `json:"max_regular_hours"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID,
		Name:            s.Name,
		StartTime:       s.StartTime.Format("15:04"),
		EndTime:         s.EndTime.Format("15:04"),
		MaxRegularHours: s.MaxRegularHours,
	}
}
