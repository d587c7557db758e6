package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/payroll"
	"github.com/paydesk-hq/paydesk-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	ApprovePeriod(w http.ResponseWriter, r *http.Request)
	ProcessPeriod(w http.ResponseWriter, r *http.Request)
	CalculateSalary(w http.ResponseWriter, r *http.Request)
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	SalaryProjections(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// CreatePeriod implements PayrollHandler
func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		slog.Error("CreatePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created successfully", result)
}

// GetPeriod implements PayrollHandler
func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPeriods implements PayrollHandler
func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().Year()
	}

	result, err := h.payrollService.ListPeriods(r.Context(), year)
	if err != nil {
		slog.Error("ListPeriods service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApprovePeriod implements PayrollHandler
func (h *payrollHandlerImpl) ApprovePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ApprovePeriod(r.Context(), id, userIDFromClaims(r))
	if err != nil {
		slog.Error("ApprovePeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period approved", result)
}

// ProcessPeriod implements PayrollHandler
func (h *payrollHandlerImpl) ProcessPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.ProcessPeriod(r.Context(), id, userIDFromClaims(r))
	if err != nil {
		slog.Error("ProcessPeriod service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period processed", result)
}

// CalculateSalary implements PayrollHandler
func (h *payrollHandlerImpl) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payrollService.CalculateSalary(r.Context(), employeeID, periodID)
	if err != nil {
		slog.Error("CalculateSalary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GeneratePayroll implements PayrollHandler
func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")

	result, err := h.payrollService.GeneratePayroll(r.Context(), periodID)
	if err != nil {
		slog.Error("GeneratePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generated", result)
}

// GeneratePayslip implements PayrollHandler
func (h *payrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payrollService.GeneratePayslip(r.Context(), employeeID, periodID)
	if err != nil {
		slog.Error("GeneratePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SalaryProjections implements PayrollHandler
func (h *payrollHandlerImpl) SalaryProjections(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().Year()
	}

	var opts payroll.ProjectionOptions
	if deptID := r.URL.Query().Get("department_id"); deptID != "" {
		opts.DepartmentID = &deptID
	}

	result, err := h.payrollService.CalculateSalaryProjections(r.Context(), year, opts)
	if err != nil {
		slog.Error("SalaryProjections service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
