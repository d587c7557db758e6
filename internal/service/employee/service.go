package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, _ := time.Parse(time.DateOnly, req.HireDate)

	emp := employee.Employee{
		ID:           uuid.NewString(),
		Code:         req.Code,
		FullName:     req.FullName,
		Email:        req.Email,
		ShiftID:      req.ShiftID,
		BasicSalary:  req.BasicSalary,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		HireDate:     hireDate,
		IsActive:     true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "code", created.Code)
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, employee.ToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.ShiftID = req.ShiftID
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = *req.DepartmentID
	}
	if req.PositionID != nil {
		emp.PositionID = *req.PositionID
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService. Soft-deactivation only;
// payroll history stays attached to the employee row.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	slog.Info("Employee deactivated", "employee_id", id)
	return nil
}
