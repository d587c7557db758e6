package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Code         string
	FullName     string
	Email        string
	ShiftID      *string
	BasicSalary  decimal.Decimal
	DepartmentID string
	PositionID   string
	HireDate     time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	PositionName   *string
}
