package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

// ListAppointments godoc
// @Summary List appointments
// @Description Admins see every appointment, users only their own. date filters by exact match.
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param date query string false "Appointment date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid session")
		return
	}

	result, err := h.appointmentUsecase.ListAppointments(r.Context(), profile, r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", result)
}

// BookAppointment godoc
// @Summary Book an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid session")
		return
	}

	var req dto.CreateAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), profile, &req)
	if err != nil {
		h.writeError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Description Marks the appointment cancelled and returns the re-fetched list for the same date filter
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Param date query string false "Date filter of the list to return"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid session")
		return
	}

	appointmentID := mux.Vars(r)["id"]
	if appointmentID == "" {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	result, err := h.appointmentUsecase.CancelAppointment(r.Context(), profile, appointmentID, r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", result)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeValidationError(w, err) {
		return
	}
	switch {
	case errors.Is(err, repository.ErrNotAuthenticated):
		response.Unauthorized(w, "Invalid session")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
