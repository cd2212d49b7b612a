package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type AttendanceHandler interface {
	RecordAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordAttendance(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("RecordAttendance service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := uuidParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	values := r.URL.Query()
	filter := query.BuildFilterFromQuery(values, attendance.AllowedFilters)

	page, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, filter, pagination.FromQuery(values))
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Paginated(w, page)
}
