package benefit

import "context"

type BenefitRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Item, error)
	Update(ctx context.Context, item Item) error
}
