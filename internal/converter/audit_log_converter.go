package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// DocumentToAuditLog converts an audit_log document to an AuditLog. The
// entry time is the document creation time.
func DocumentToAuditLog(doc *entity.Document) (*entity.AuditLog, error) {
	var log entity.AuditLog
	if err := decodeDocument(doc, &log); err != nil {
		return nil, err
	}
	log.ID = doc.ID
	log.CreatedAt = doc.CreatedAt
	return &log, nil
}

// AuditLogToResponse converts a AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Entity:    log.Entity,
		EntityID:  log.EntityID,
		OldValue:  log.OldValue,
		NewValue:  log.NewValue,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
