package middleware

import (
	"net/http"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/response"
)

// RequireRole creates a middleware that checks if the profile has any of the required roles
// Profile is read from context (set by AuthMiddleware)
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, ok := GetProfileFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Profile information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if profile.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
