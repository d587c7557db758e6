package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository

	// defaultMultiplier applies when a submission leaves the multiplier unset.
	defaultMultiplier decimal.Decimal

	now func() time.Time
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	defaultMultiplier decimal.Decimal,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo:      overtimeRepo,
		employeeRepo:      employeeRepo,
		defaultMultiplier: defaultMultiplier,
		now:               time.Now,
	}
}

// Submit implements overtime.OvertimeService. New records start pending and
// carry no weight in payroll until approved.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return overtime.RecordResponse{}, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	multiplier := req.Multiplier
	if multiplier.IsZero() {
		multiplier = s.defaultMultiplier
	}

	rec := overtime.Record{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Hours:      req.Hours,
		Multiplier: multiplier,
		Status:     overtime.StatusPending,
	}

	created, err := s.overtimeRepo.Create(ctx, rec)
	if err != nil {
		return overtime.RecordResponse{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	slog.Info("Overtime submitted", "employee_id", req.EmployeeID, "date", req.Date, "hours", req.Hours)
	return overtime.ToResponse(created), nil
}

// Approve implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string, approvedBy string) (overtime.RecordResponse, error) {
	return s.process(ctx, id, approvedBy, overtime.StatusApproved)
}

// Reject implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string, rejectedBy string) (overtime.RecordResponse, error) {
	return s.process(ctx, id, rejectedBy, overtime.StatusRejected)
}

func (s *OvertimeServiceImpl) process(ctx context.Context, id, actor string, status overtime.ApprovalStatus) (overtime.RecordResponse, error) {
	rec, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		return overtime.RecordResponse{}, err
	}
	if rec.Status != overtime.StatusPending {
		return overtime.RecordResponse{}, overtime.ErrAlreadyProcessed
	}

	now := s.now()
	rec.Status = status
	rec.ApprovedBy = &actor
	rec.ApprovedAt = &now

	if err := s.overtimeRepo.Update(ctx, rec); err != nil {
		return overtime.RecordResponse{}, fmt.Errorf("failed to update overtime record: %w", err)
	}

	slog.Info("Overtime processed", "record_id", id, "status", status, "by", actor)
	return overtime.ToResponse(rec), nil
}

// ListByEmployee implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListByEmployee(ctx context.Context, employeeID string, start, end string) ([]overtime.RecordResponse, error) {
	startDate, okStart := validator.IsValidDate(start)
	endDate, okEnd := validator.IsValidDate(end)
	if !okStart || !okEnd {
		return nil, validator.ValidationErrors{{Field: "range", Message: "start and end must be in YYYY-MM-DD format"}}
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.overtimeRepo.ListByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}

	result := make([]overtime.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, overtime.ToResponse(rec))
	}
	return result, nil
}
