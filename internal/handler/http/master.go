package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/benefit"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/shift"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/tax"
	"github.com/paydesk-hq/paydesk-backend-go/internal/handler/http/response"
	"github.com/paydesk-hq/paydesk-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Shift handlers
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)

	// Benefit handlers
	CreateBenefitItem(w http.ResponseWriter, r *http.Request)
	ListBenefitItems(w http.ResponseWriter, r *http.Request)
	UpdateBenefitItem(w http.ResponseWriter, r *http.Request)

	// Tax bracket handlers
	GetTaxBrackets(w http.ResponseWriter, r *http.Request)
	ReplaceTaxBrackets(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== SHIFT HANDLERS ====================

func (h *masterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateShift(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", result)
}

// ==================== BENEFIT HANDLERS ====================

func (h *masterHandlerImpl) CreateBenefitItem(w http.ResponseWriter, r *http.Request) {
	var req benefit.CreateItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateBenefitItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Benefit item created successfully", result)
}

func (h *masterHandlerImpl) ListBenefitItems(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.masterService.ListBenefitItems(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) UpdateBenefitItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req benefit.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateBenefitItem(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Benefit item updated successfully", result)
}

// ==================== TAX BRACKET HANDLERS ====================

func (h *masterHandlerImpl) GetTaxBrackets(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		year = time.Now().Year()
	}

	result, err := h.masterService.GetTaxBrackets(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ReplaceTaxBrackets(w http.ResponseWriter, r *http.Request) {
	var req tax.ReplaceBracketsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.ReplaceTaxBrackets(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax brackets replaced successfully", result)
}
