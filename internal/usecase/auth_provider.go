package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinic-booking/config"
	"clinic-booking/internal/converter"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrProfileProvisioningFailed = errors.New("failed to create user profile after retries")
	ErrProfileNotFound           = errors.New("user profile not found after creation")
	ErrLoginFailed               = errors.New("login failed")
	ErrRegistrationFailed        = errors.New("registration failed")
	ErrLogoutFailed              = errors.New("logout failed")
)

// AuthState is a read-only snapshot of the provider state.
type AuthState struct {
	User    *entity.UserProfile
	Session *entity.Session
	Loading bool
}

// AuthProvider resolves the signed-in account to its UserProfile, creating
// the profile on first sign-in. It owns the user/loading state; callers only
// ever see copies through Snapshot.
type AuthProvider interface {
	// Start performs the initial refresh. Failures are logged and leave the
	// user unset; Loading is false once Start returns.
	Start(ctx context.Context)
	RefreshUser(ctx context.Context) (*entity.UserProfile, error)
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	Snapshot() AuthState
}

// BootstrapOptions holds the waits and the retry policy of the bootstrap.
type BootstrapOptions struct {
	// SettleDelay is waited before provisioning a missing profile, giving the
	// backend time to replicate the new session.
	SettleDelay time.Duration
	// SessionSettleDelay is waited after a stale session was deleted.
	SessionSettleDelay time.Duration
	Retry              RetryPolicy
}

func BootstrapOptionsFromConfig(cfg config.BootstrapConfig) BootstrapOptions {
	return BootstrapOptions{
		SettleDelay:        cfg.SettleDelay,
		SessionSettleDelay: cfg.SessionSettleDelay,
		Retry:              FixedRetry(cfg.RetryAttempts, cfg.RetryDelay),
	}
}

// AuthProviderFactory builds a provider bound to a session token. An empty
// token gives a provider with no session.
type AuthProviderFactory func(token string) AuthProvider

func NewAuthProviderFactory(
	log *logrus.Logger,
	accounts repository.AccountClient,
	store repository.DocumentStore,
	metrics *metrics.Metrics,
	opts BootstrapOptions,
) AuthProviderFactory {
	return func(token string) AuthProvider {
		return NewAuthProvider(log, accounts.WithSession(token), store, metrics, opts)
	}
}

type authProvider struct {
	log      *logrus.Logger
	accounts repository.AccountClient
	store    repository.DocumentStore
	metrics  *metrics.Metrics
	opts     BootstrapOptions

	mu    sync.RWMutex
	state AuthState
}

func NewAuthProvider(
	log *logrus.Logger,
	accounts repository.AccountClient,
	store repository.DocumentStore,
	metrics *metrics.Metrics,
	opts BootstrapOptions,
) AuthProvider {
	return &authProvider{
		log:      log,
		accounts: accounts,
		store:    store,
		metrics:  metrics,
		opts:     opts,
		state:    AuthState{Loading: true},
	}
}

func (p *authProvider) Start(ctx context.Context) {
	if _, err := p.RefreshUser(ctx); err != nil {
		p.log.Debugf("Initial session refresh failed: %v", err)
	}

	p.mu.Lock()
	p.state.Loading = false
	p.mu.Unlock()
}

func (p *authProvider) Snapshot() AuthState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snapshot := AuthState{Loading: p.state.Loading}
	if p.state.User != nil {
		user := *p.state.User
		snapshot.User = &user
	}
	if p.state.Session != nil {
		session := *p.state.Session
		snapshot.Session = &session
	}
	return snapshot
}

// RefreshUser fetches the current account and resolves its profile. Any
// failure clears the user and is returned to the caller.
func (p *authProvider) RefreshUser(ctx context.Context) (*entity.UserProfile, error) {
	profile, err := p.resolveProfile(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotAuthenticated) {
			p.log.Debugf("No active session: %v", err)
		} else {
			p.log.Warnf("Failed to refresh user: %+v", err)
		}
		p.setUser(nil)
		return nil, err
	}

	p.setUser(profile)
	user := *profile
	return &user, nil
}

func (p *authProvider) resolveProfile(ctx context.Context) (*entity.UserProfile, error) {
	account, err := p.accounts.GetCurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := p.findProfile(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	if err := sleep(ctx, p.opts.SettleDelay); err != nil {
		return nil, err
	}

	role := p.classifyRole(ctx, account.Email)
	if err := p.provisionProfile(ctx, account, role); err != nil {
		return nil, err
	}

	profile, err = p.findProfile(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// findProfile returns the first profile of the account, or nil when none exists.
func (p *authProvider) findProfile(ctx context.Context, accountID string) (*entity.UserProfile, error) {
	docs, err := p.store.ListDocuments(ctx, entity.CollectionUsers, repository.Equal("userId", accountID))
	if err != nil {
		return nil, fmt.Errorf("list user profiles: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return converter.DocumentToUserProfile(&docs[0])
}

// classifyRole checks the admin allowlist. It never fails: a lookup error,
// typically a permission error, is logged and the role stays user.
func (p *authProvider) classifyRole(ctx context.Context, email string) entity.Role {
	docs, err := p.store.ListDocuments(ctx, entity.CollectionAdmin, repository.Equal("email", email))
	if err != nil {
		p.log.Warnf("Admin check failed, defaulting to user role: %v", err)
		return entity.RoleUser
	}
	if len(docs) > 0 {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

func (p *authProvider) provisionProfile(ctx context.Context, account *entity.Account, role entity.Role) error {
	profile := &entity.UserProfile{
		UserID: account.ID,
		Name:   account.Name,
		Email:  account.Email,
		Role:   role,
	}
	permissions := []string{
		entity.PermissionRead(entity.UserRole(account.ID)),
		entity.PermissionWrite(entity.UserRole(account.ID)),
	}

	err := p.opts.Retry.Do(ctx, func(attempt int) error {
		_, err := p.store.CreateDocument(ctx, entity.CollectionUsers, entity.UniqueID, converter.UserProfileFields(profile), permissions...)
		p.metrics.ObserveProvisioningAttempt(err == nil)
		if err != nil {
			p.log.Warnf("Profile creation attempt %d failed: %v", attempt, err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProfileProvisioningFailed, err)
	}

	p.metrics.ObserveProfileProvisioned(string(role))
	p.log.Infof("User profile created: account=%s, role=%s", account.ID, role)
	return nil
}

// Login replaces any existing session with a new one for the credentials
// and refreshes the user.
func (p *authProvider) Login(ctx context.Context, email, password string) error {
	if err := p.dropStaleSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	session, err := p.accounts.CreateSession(ctx, email, password)
	if err != nil {
		p.log.Warnf("Failed to create session: %v", err)
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	p.setSession(session)

	if _, err := p.RefreshUser(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	return nil
}

// Register creates the account, signs it in and provisions its profile.
func (p *authProvider) Register(ctx context.Context, email, password, name string) error {
	if _, err := p.accounts.CreateAccount(ctx, entity.UniqueID, email, password, name); err != nil {
		p.log.Warnf("Failed to create account: %v", err)
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	if err := p.dropStaleSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	session, err := p.accounts.CreateSession(ctx, email, password)
	if err != nil {
		p.log.Warnf("Failed to create session: %v", err)
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	p.setSession(session)

	if _, err := p.RefreshUser(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return nil
}

// Logout deletes the current session. The local state is cleared only once
// the backend confirmed the deletion.
func (p *authProvider) Logout(ctx context.Context) error {
	if err := p.accounts.DeleteSession(ctx, entity.CurrentSession); err != nil {
		p.log.Warnf("Failed to logout: %v", err)
		return fmt.Errorf("%w: %w", ErrLogoutFailed, err)
	}

	p.mu.Lock()
	p.state.User = nil
	p.state.Session = nil
	p.mu.Unlock()
	return nil
}

// dropStaleSession deletes the current session if there is one. A missing
// session is the normal case and not an error; only ctx cancellation is
// returned.
func (p *authProvider) dropStaleSession(ctx context.Context) error {
	if err := p.accounts.DeleteSession(ctx, entity.CurrentSession); err != nil {
		p.log.Debugf("No stale session to delete: %v", err)
		return ctx.Err()
	}

	p.setSession(nil)
	return sleep(ctx, p.opts.SessionSettleDelay)
}

func (p *authProvider) setUser(user *entity.UserProfile) {
	p.mu.Lock()
	p.state.User = user
	p.mu.Unlock()
}

func (p *authProvider) setSession(session *entity.Session) {
	p.mu.Lock()
	p.state.Session = session
	p.mu.Unlock()
}
