package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetAuditLog godoc
// @Summary Get an audit log entry
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Audit log ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID := mux.Vars(r)["id"]
	if auditLogID == "" {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// GetAllAuditLogs godoc
// @Summary List audit log entries
// @Description Newest first. entity and entityId narrow the list.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param entity query string false "Entity kind (doctors, clinics, appointment)"
// @Param entityId query string false "Entity ID"
// @Success 200 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	auditLogs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), query.Get("entity"), query.Get("entityId"))
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs)
}
