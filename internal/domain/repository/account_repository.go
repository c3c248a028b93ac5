package repository

import (
	"context"
	"errors"

	"clinic-booking/internal/domain/entity"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoActiveSession    = errors.New("no active session")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AccountClient is the account side of the backend collaborator. A client
// is bound to at most one "current" session at a time.
type AccountClient interface {
	GetCurrentAccount(ctx context.Context) (*entity.Account, error)
	CreateSession(ctx context.Context, email, password string) (*entity.Session, error)
	// DeleteSession accepts a session id or entity.CurrentSession.
	DeleteSession(ctx context.Context, sessionID string) error
	CreateAccount(ctx context.Context, id, email, password, name string) (*entity.Account, error)
	// WithSession returns a client bound to the given session token.
	WithSession(token string) AccountClient
}
