package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := h.doctorUsecase.ListDoctors(r.Context(), r.URL.Query().Get("specializationId"))
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDoctorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.writeError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	if err := h.doctorUsecase.DeleteDoctor(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err, "Failed to delete doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	if writeValidationError(w, err) {
		return
	}
	if errors.Is(err, usecase.ErrDoctorNotFound) {
		response.NotFound(w, "Doctor not found")
		return
	}
	response.InternalServerError(w, fallback)
}
