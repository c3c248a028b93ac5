package usecase

import (
	"context"
	"strings"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AdminAllowlistUsecase maintains the admin collection. Membership is read
// only when a profile is first provisioned, so changes do not affect
// existing profiles.
type AdminAllowlistUsecase interface {
	Grant(ctx context.Context, email string) (bool, error)
	Revoke(ctx context.Context, email string) (int, error)
}

type adminAllowlistUsecase struct {
	log   *logrus.Logger
	store repository.DocumentStore
}

func NewAdminAllowlistUsecase(log *logrus.Logger, store repository.DocumentStore) AdminAllowlistUsecase {
	return &adminAllowlistUsecase{log: log, store: store}
}

// Grant adds email to the allowlist and reports whether an entry was created.
func (u *adminAllowlistUsecase) Grant(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, &ValidationError{Fields: map[string]string{"email": "email is required"}}
	}

	docs, err := u.store.ListDocuments(ctx, entity.CollectionAdmin, repository.Equal("email", email))
	if err != nil {
		return false, err
	}
	if len(docs) > 0 {
		return false, nil
	}

	if _, err := u.store.CreateDocument(ctx, entity.CollectionAdmin, entity.UniqueID, map[string]interface{}{"email": email}); err != nil {
		u.log.Warnf("Failed to add admin %s: %+v", email, err)
		return false, err
	}
	u.log.Infof("Admin granted: %s", email)
	return true, nil
}

// Revoke removes every allowlist entry for email and returns how many were removed.
func (u *adminAllowlistUsecase) Revoke(ctx context.Context, email string) (int, error) {
	docs, err := u.store.ListDocuments(ctx, entity.CollectionAdmin, repository.Equal("email", strings.TrimSpace(email)))
	if err != nil {
		return 0, err
	}

	for _, doc := range docs {
		if err := u.store.DeleteDocument(ctx, entity.CollectionAdmin, doc.ID); err != nil {
			u.log.Warnf("Failed to revoke admin %s: %+v", email, err)
			return 0, err
		}
	}
	if len(docs) > 0 {
		u.log.Infof("Admin revoked: %s", email)
	}
	return len(docs), nil
}
