package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, entityName, entityID string) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id string) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log   *logrus.Logger
	store repository.DocumentStore
}

func NewAuditLogUsecase(log *logrus.Logger, store repository.DocumentStore) AuditLogUsecase {
	return &auditLogUsecase{
		log:   log,
		store: store,
	}
}

// ListAuditLogs returns entries newest first, optionally narrowed to one
// entity kind and one entity id.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, entityName, entityID string) (*dto.AuditLogListResponse, error) {
	var filters []repository.Filter
	if name := strings.TrimSpace(entityName); name != "" {
		filters = append(filters, repository.Equal("entity", name))
	}
	if id := strings.TrimSpace(entityID); id != "" {
		filters = append(filters, repository.Equal("entityId", id))
	}

	docs, err := u.store.ListDocuments(ctx, entity.CollectionAuditLog, filters...)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	logs := make([]entity.AuditLog, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		log, err := converter.DocumentToAuditLog(&docs[i])
		if err != nil {
			u.log.Warnf("Failed to decode audit log %s: %+v", docs[i].ID, err)
			return nil, err
		}
		logs = append(logs, *log)
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id string) (*dto.AuditLogResponse, error) {
	doc, err := u.store.GetDocument(ctx, entity.CollectionAuditLog, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrAuditLogNotFound
		}
		u.log.Warnf("Failed to find audit log %s: %+v", id, err)
		return nil, err
	}

	log, err := converter.DocumentToAuditLog(doc)
	if err != nil {
		return nil, err
	}
	return converter.AuditLogToResponse(log), nil
}
