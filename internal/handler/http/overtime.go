package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/overtime"
	"github.com/paydesk-hq/paydesk-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// Submit implements OvertimeHandler
func (h *overtimeHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime submitted successfully", result)
}

// Approve implements OvertimeHandler
func (h *overtimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.overtimeService.Approve(r.Context(), id, userIDFromClaims(r))
	if err != nil {
		slog.Error("Approve overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime approved", result)
}

// Reject implements OvertimeHandler
func (h *overtimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.overtimeService.Reject(r.Context(), id, userIDFromClaims(r))
	if err != nil {
		slog.Error("Reject overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rejected", result)
}

// ListByEmployee implements OvertimeHandler
func (h *overtimeHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	result, err := h.overtimeService.ListByEmployee(r.Context(), employeeID, start, end)
	if err != nil {
		slog.Error("ListByEmployee overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func userIDFromClaims(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
