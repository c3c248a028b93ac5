package service

import (
	"context"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type actorKey struct{}

// WithActor returns ctx carrying the account id that audit entries are
// attributed to.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the account id set by WithActor, or "".
func ActorFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(actorKey{}).(string)
	return userID
}

// AuditService writes audit entries to the audit_log collection. A nil
// *AuditService records nothing.
type AuditService struct {
	log   *logrus.Logger
	store repository.DocumentStore
}

func NewAuditService(log *logrus.Logger, store repository.DocumentStore) *AuditService {
	return &AuditService{
		log:   log,
		store: store,
	}
}

// LogCreate logs a create action
func (s *AuditService) LogCreate(ctx context.Context, action, entityName, entityID string, newValue interface{}) error {
	return s.record(ctx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *AuditService) LogUpdate(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.record(ctx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *AuditService) LogDelete(ctx context.Context, action, entityName, entityID string, oldValue interface{}) error {
	return s.record(ctx, action, entityName, entityID, oldValue, nil)
}

func (s *AuditService) record(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) error {
	if s == nil {
		return nil
	}

	fields := map[string]interface{}{
		"userId":   ActorFromContext(ctx),
		"action":   action,
		"entity":   entityName,
		"entityId": entityID,
		"oldValue": oldValue,
		"newValue": newValue,
	}

	if _, err := s.store.CreateDocument(ctx, entity.CollectionAuditLog, entity.UniqueID, fields); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}
