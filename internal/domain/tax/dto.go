package tax

import (
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BracketInput struct {
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max"`
	Rate decimal.Decimal  `json:"rate"`
}

type ReplaceBracketsRequest struct {
	Year     int            `json:"year"`
	Brackets []BracketInput `json:"brackets"`
}

func (r *ReplaceBracketsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if len(r.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "brackets",
			Message: "brackets must not be empty",
		})
	}
	for _, b := range r.Brackets {
		if !validator.IsValidRate(b.Rate) {
			errs = append(errs, validator.ValidationError{
				Field:   "brackets",
				Message: "rate must be between 0 and 1",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	ID   string           `json:"id"`
	Year int              `json:"year"`
	Min  decimal.Decimal  `json:"min"`
	Max  *decimal.Decimal `json:"max,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

func ToResponse(b Bracket) BracketResponse {
	return BracketResponse{
		ID:   b.ID,
		Year: b.Year,
		Min:  b.Min,
		Max:  b.Max,
		Rate: b.Rate,
	}
}
