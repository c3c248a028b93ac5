package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
	}
}

func (h *ClinicHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	result, err := h.clinicUsecase.ListClinics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", result)
}

func (h *ClinicHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClinicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	clinic, err := h.clinicUsecase.CreateClinic(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create clinic")
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateClinicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	clinic, err := h.clinicUsecase.UpdateClinic(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to update clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	if err := h.clinicUsecase.DeleteClinic(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err, "Failed to delete clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}

func (h *ClinicHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeValidationError(w, err) {
		return
	}
	if errors.Is(err, usecase.ErrClinicNotFound) {
		response.NotFound(w, "Clinic not found")
		return
	}
	response.InternalServerError(w, fallback)
}
