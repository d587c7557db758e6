package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.code, e.full_name, e.email, e.shift_id, e.basic_salary,
	e.department_id, e.position_id, e.hire_date, e.is_active,
	e.created_at, e.updated_at,
	d.name AS department_name, p.name AS position_name
`

const employeeJoins = `
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Code, &e.FullName, &e.Email, &e.ShiftID, &e.BasicSalary,
		&e.DepartmentID, &e.PositionID, &e.HireDate, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.PositionName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, code, full_name, email, shift_id, basic_salary,
			department_id, position_id, hire_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Code, emp.FullName, emp.Email, emp.ShiftID, emp.BasicSalary,
		emp.DepartmentID, emp.PositionID, emp.HireDate, emp.IsActive,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employee_email") {
			return employee.Employee{}, employee.ErrEmployeeEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e ` + employeeJoins + ` WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e ` + employeeJoins + ` WHERE e.code = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e ` + employeeJoins + `
		WHERE e.is_active = TRUE
		ORDER BY e.code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE 1=1`
	args := []interface{}{}

	if filter.ActiveOnly {
		where += ` AND e.is_active = TRUE`
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		where += fmt.Sprintf(` AND e.department_id = $%d`, len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `SELECT ` + employeeColumns + ` FROM employees e ` + employeeJoins + ` ` + where +
		fmt.Sprintf(` ORDER BY e.code LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, shift_id = $3, basic_salary = $4,
			department_id = $5, position_id = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.ShiftID, emp.BasicSalary,
		emp.DepartmentID, emp.PositionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
