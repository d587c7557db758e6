package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk-hq/paydesk-backend-go/internal/domain/attendance"
	"github.com/paydesk-hq/paydesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetMonthlyCalendar(w http.ResponseWriter, r *http.Request)
	MarkAttendance(w http.ResponseWriter, r *http.Request)
	BatchMarkAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// GetSummary implements AttendanceHandler
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("start_date"))
	if err != nil {
		response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
		return
	}
	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("end_date"))
	if err != nil {
		response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.attendanceService.Summarize(r.Context(), employeeID, start, end)
	if err != nil {
		slog.Error("GetSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthlyCalendar implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMonthlyCalendar(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year is required", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	result, err := h.attendanceService.MonthlyCalendar(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("GetMonthlyCalendar service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		slog.Error("MarkAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", result)
}

// BatchMarkAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) BatchMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.BatchMarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.BatchMarkAttendance(r.Context(), req)
	if err != nil {
		slog.Error("BatchMarkAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
