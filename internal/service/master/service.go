package master

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	payrollsvc "github.com/paydesk-hq/paydesk-backend-go/internal/service/payroll"
)

// MasterService manages the reference data the payroll pipeline reads:
// shifts, benefit and deduction items, and tax bracket tables.
type MasterService interface {
	// Shift operations
	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.ShiftResponse, error)
	UpdateShift(ctx context.Context, id string, req shift.CreateShiftRequest) (shift.ShiftResponse, error)

	// Benefit operations
	CreateBenefitItem(ctx context.Context, req benefit.CreateItemRequest) (benefit.ItemResponse, error)
	ListBenefitItems(ctx context.Context, employeeID string) ([]benefit.ItemResponse, error)
	UpdateBenefitItem(ctx context.Context, id string, req benefit.CreateItemRequest) (benefit.ItemResponse, error)

	// Tax bracket operations
	GetTaxBrackets(ctx context.Context, year int) ([]tax.BracketResponse, error)
	ReplaceTaxBrackets(ctx context.Context, req tax.ReplaceBracketsRequest) ([]tax.BracketResponse, error)
}

type MasterServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	benefitRepo  benefit.BenefitRepository
	taxRepo      tax.TaxRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(
	shiftRepo shift.ShiftRepository,
	benefitRepo benefit.BenefitRepository,
	taxRepo tax.TaxRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &MasterServiceImpl{
		shiftRepo:    shiftRepo,
		benefitRepo:  benefitRepo,
		taxRepo:      taxRepo,
		employeeRepo: employeeRepo,
	}
}

// ==================== SHIFT OPERATIONS ====================

func (s *MasterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, _ := time.Parse("15:04", req.StartTime)
	end, _ := time.Parse("15:04", req.EndTime)

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		ID:              uuid.NewString(),
		Name:            req.Name,
		StartTime:       start,
		EndTime:         end,
		MaxRegularHours: req.MaxRegularHours,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

func (s *MasterServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

func (s *MasterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

func (s *MasterServiceImpl) UpdateShift(ctx context.Context, id string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	start, _ := time.Parse("15:04", req.StartTime)
	end, _ := time.Parse("15:04", req.EndTime)

	sh.Name = req.Name
	sh.StartTime = start
	sh.EndTime = end
	sh.MaxRegularHours = req.MaxRegularHours

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(sh), nil
}

// ==================== BENEFIT OPERATIONS ====================

func (s *MasterServiceImpl) CreateBenefitItem(ctx context.Context, req benefit.CreateItemRequest) (benefit.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.ItemResponse{}, err
	}

	// Item must belong to a known employee
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return benefit.ItemResponse{}, err
	}

	item, err := s.benefitRepo.Create(ctx, buildItem(uuid.NewString(), req))
	if err != nil {
		return benefit.ItemResponse{}, err
	}

	return benefit.ToResponse(item), nil
}

func (s *MasterServiceImpl) ListBenefitItems(ctx context.Context, employeeID string) ([]benefit.ItemResponse, error) {
	items, err := s.benefitRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]benefit.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, benefit.ToResponse(item))
	}
	return responses, nil
}

func (s *MasterServiceImpl) UpdateBenefitItem(ctx context.Context, id string, req benefit.CreateItemRequest) (benefit.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.ItemResponse{}, err
	}

	existing, err := s.benefitRepo.GetByID(ctx, id)
	if err != nil {
		return benefit.ItemResponse{}, err
	}

	item := buildItem(existing.ID, req)
	item.EmployeeID = existing.EmployeeID
	item.CreatedAt = existing.CreatedAt

	if err := s.benefitRepo.Update(ctx, item); err != nil {
		return benefit.ItemResponse{}, err
	}

	return benefit.ToResponse(item), nil
}

func buildItem(id string, req benefit.CreateItemRequest) benefit.Item {
	from, _ := time.Parse(time.DateOnly, req.EffectiveFrom)
	var to *time.Time
	if req.EffectiveTo != nil {
		t, _ := time.Parse(time.DateOnly, *req.EffectiveTo)
		to = &t
	}

	return benefit.Item{
		ID:            id,
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Category:      benefit.Category(req.Category),
		IsPercentage:  req.IsPercentage,
		Amount:        req.Amount,
		Percentage:    req.Percentage,
		EffectiveFrom: from,
		EffectiveTo:   to,
		Recurring:     req.Recurring,
	}
}

// ==================== TAX BRACKET OPERATIONS ====================

func (s *MasterServiceImpl) GetTaxBrackets(ctx context.Context, year int) ([]tax.BracketResponse, error) {
	brackets, err := s.taxRepo.GetBracketsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]tax.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		responses = append(responses, tax.ToResponse(b))
	}
	return responses, nil
}

func (s *MasterServiceImpl) ReplaceTaxBrackets(ctx context.Context, req tax.ReplaceBracketsRequest) ([]tax.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	brackets := make([]tax.Bracket, 0, len(req.Brackets))
	for _, in := range req.Brackets {
		brackets = append(brackets, tax.Bracket{
			ID:   uuid.NewString(),
			Year: req.Year,
			Min:  in.Min,
			Max:  in.Max,
			Rate: in.Rate,
		})
	}

	// The whole table must be coherent before it replaces the old one
	if err := payrollsvc.ValidateBrackets(brackets); err != nil {
		return nil, err
	}

	if err := s.taxRepo.ReplaceBracketsForYear(ctx, req.Year, brackets); err != nil {
		return nil, err
	}

	responses := make([]tax.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		responses = append(responses, tax.ToResponse(b))
	}
	return responses, nil
}
