package handler

import (
	"net/http"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/response"
)

type SpecializationHandler struct{}

func NewSpecializationHandler() *SpecializationHandler {
	return &SpecializationHandler{}
}

// SearchSpecializations returns the catalog entries whose name contains q.
func (h *SpecializationHandler) SearchSpecializations(w http.ResponseWriter, r *http.Request) {
	specs := entity.SearchSpecializations(r.URL.Query().Get("q"))
	response.Success(w, http.StatusOK, "Specializations retrieved successfully", converter.SpecializationsToResponses(specs))
}
