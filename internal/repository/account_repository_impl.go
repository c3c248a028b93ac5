package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// SessionRecorder tracks which session tokens are still live.
type SessionRecorder interface {
	Save(ctx context.Context, session *entity.Session) error
	Exists(ctx context.Context, accountID, sessionID string) (bool, error)
	Delete(ctx context.Context, accountID, sessionID string) error
}

type accountClient struct {
	db       *gorm.DB
	sessions SessionRecorder
	jwt      *jwt.JWTService

	mu    sync.RWMutex
	token string
}

// NewAccountClient returns a client with no session bound.
func NewAccountClient(db *gorm.DB, sessions SessionRecorder, jwtService *jwt.JWTService) domainRepo.AccountClient {
	return &accountClient{
		db:       db,
		sessions: sessions,
		jwt:      jwtService,
	}
}

func (c *accountClient) WithSession(token string) domainRepo.AccountClient {
	return &accountClient{
		db:       c.db,
		sessions: c.sessions,
		jwt:      c.jwt,
		token:    token,
	}
}

func (c *accountClient) GetCurrentAccount(ctx context.Context) (*entity.Account, error) {
	claims, err := c.currentClaims(ctx)
	if err != nil {
		return nil, err
	}

	var account entity.Account
	err = c.db.WithContext(ctx).Where("id = ?", claims.AccountID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrNotAuthenticated
		}
		return nil, err
	}
	return &account, nil
}

func (c *accountClient) CreateAccount(ctx context.Context, id, email, password, name string) (*entity.Account, error) {
	if len(password) < minPasswordLength {
		return nil, domainRepo.ErrWeakPassword
	}
	if id == "" || id == entity.UniqueID {
		id = uuid.New().String()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &entity.Account{
		ID:       id,
		Email:    normalizeEmail(email),
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(name),
	}
	if err := c.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, domainRepo.ErrDuplicateEmail
		}
		return nil, err
	}
	return account, nil
}

// CreateSession checks the credentials, issues a signed token and binds the
// client to it.
func (c *accountClient) CreateSession(ctx context.Context, email, password string) (*entity.Session, error) {
	var account entity.Account
	err := c.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRepo.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, domainRepo.ErrInvalidCredentials
	}

	token, sessionID, expiresAt, err := c.jwt.GenerateSessionToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	session := &entity.Session{
		ID:        sessionID,
		AccountID: account.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := c.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return session, nil
}

// DeleteSession revokes the bound session, or another session of the same
// account when sessionID names one.
func (c *accountClient) DeleteSession(ctx context.Context, sessionID string) error {
	claims, err := c.currentClaims(ctx)
	if err != nil {
		if errors.Is(err, domainRepo.ErrNotAuthenticated) {
			return domainRepo.ErrNoActiveSession
		}
		return fmt.Errorf("check session: %w", err)
	}

	if sessionID == "" || sessionID == entity.CurrentSession {
		sessionID = claims.SessionID
	}

	if err := c.sessions.Delete(ctx, claims.AccountID, sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return domainRepo.ErrNoActiveSession
		}
		return err
	}

	if sessionID == claims.SessionID {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
	}
	return nil
}

// currentClaims validates the bound token and checks its session is live.
func (c *accountClient) currentClaims(ctx context.Context) (*jwt.Claims, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return nil, domainRepo.ErrNotAuthenticated
	}

	claims, err := c.jwt.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainRepo.ErrNotAuthenticated, err)
	}

	live, err := c.sessions.Exists(ctx, claims.AccountID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, domainRepo.ErrNotAuthenticated
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
