package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// Record is one day's overtime claim. Only approved records count toward
// overtime pay.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Hours      decimal.Decimal
	Multiplier decimal.Decimal
	Status     ApprovalStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
