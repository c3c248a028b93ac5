package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ProfileKey      contextKey = "profile"
	SessionTokenKey contextKey = "session_token"
	AuthProviderKey contextKey = "auth_provider"
)

type AuthMiddleware struct {
	newProvider usecase.AuthProviderFactory
	log         *logrus.Logger
}

func NewAuthMiddleware(newProvider usecase.AuthProviderFactory, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		newProvider: newProvider,
		log:         log,
	}
}

// Authenticate binds the bearer token to a provider, resolves the profile and
// stores both in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		provider := m.newProvider(token)
		profile, err := provider.RefreshUser(r.Context())
		if err != nil {
			if errors.Is(err, repository.ErrNotAuthenticated) {
				response.Unauthorized(w, "Invalid or expired session")
				return
			}
			m.log.Warnf("Failed to resolve user profile: %+v", err)
			response.InternalServerError(w, "Failed to load user profile")
			return
		}

		ctx := context.WithValue(r.Context(), ProfileKey, profile)
		ctx = context.WithValue(ctx, SessionTokenKey, token)
		ctx = context.WithValue(ctx, AuthProviderKey, provider)
		ctx = service.WithActor(ctx, profile.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from "Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// WithProfile returns ctx carrying profile, as Authenticate does.
func WithProfile(ctx context.Context, profile *entity.UserProfile) context.Context {
	return context.WithValue(ctx, ProfileKey, profile)
}

// WithAuthProvider returns ctx carrying provider, as Authenticate does.
func WithAuthProvider(ctx context.Context, provider usecase.AuthProvider) context.Context {
	return context.WithValue(ctx, AuthProviderKey, provider)
}

// GetProfileFromContext extracts the signed-in profile from context
func GetProfileFromContext(ctx context.Context) (*entity.UserProfile, bool) {
	profile, ok := ctx.Value(ProfileKey).(*entity.UserProfile)
	return profile, ok && profile != nil
}

// GetSessionTokenFromContext extracts the bearer token from context
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenKey).(string)
	return token, ok
}

// GetAuthProviderFromContext extracts the session-bound provider from context
func GetAuthProviderFromContext(ctx context.Context) (usecase.AuthProvider, bool) {
	provider, ok := ctx.Value(AuthProviderKey).(usecase.AuthProvider)
	return provider, ok
}
