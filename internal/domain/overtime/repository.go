package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetApprovedByEmployeeAndRange returns approved records within
	// [start, end] inclusive. Pending and rejected records are excluded at
	// the query level so they can never leak into pay.
	GetApprovedByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
	Update(ctx context.Context, rec Record) error
}
