package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-event-checkin/internal/application/attendance"
	"github.com/go-event-checkin/internal/transport/http/middleware"
)

// AttendanceHandler handles the check-in transition and aggregate totals.
type AttendanceHandler struct {
	svc attendance.Service
}

func NewAttendanceHandler(svc attendance.Service) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.MobileFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	reg, err := h.svc.CheckIn(r.Context(), caller, chi.URLParam(r, "mobile"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *AttendanceHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.TotalParticipants(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}
