package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deactivates an employee. Employees are never hard-deleted
	// so historical payroll entries stay resolvable.
	Deactivate(ctx context.Context, id string) error
}
