package handler

import (
	"errors"
	"net/http"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"
)

type AuthHandler struct {
	newProvider usecase.AuthProviderFactory
	validator   *validator.CustomValidator
}

func NewAuthHandler(newProvider usecase.AuthProviderFactory, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		newProvider: newProvider,
		validator:   validator,
	}
}

// Register handles account registration
// @Summary Register a new account
// @Description Create an account, sign it in and provision its profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider := h.newProvider("")
	if err := provider.Register(r.Context(), req.Email, req.Password, req.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Conflict(w, "Email already exists")
		case errors.Is(err, repository.ErrWeakPassword):
			response.BadRequest(w, repository.ErrWeakPassword.Error())
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", authResponse(provider.Snapshot()))
}

// Login handles sign-in
// @Summary Login
// @Description Replace any current session with a new one and load the profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, _ := bearerToken(r)
	provider := h.newProvider(token)
	if err := provider.Login(r.Context(), req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", authResponse(provider.Snapshot()))
}

// Logout handles sign-out
// @Summary Logout
// @Description Delete the current session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	provider, ok := middleware.GetAuthProviderFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid session")
		return
	}

	if err := provider.Logout(r.Context()); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoActiveSession), errors.Is(err, repository.ErrNotAuthenticated):
			response.Unauthorized(w, "No active session")
		default:
			response.InternalServerError(w, "Failed to logout")
		}
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentUser returns the profile resolved for the session
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid session")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", converter.UserProfileToResponse(profile))
}

func authResponse(state usecase.AuthState) *dto.AuthResponse {
	return &dto.AuthResponse{
		Session: converter.SessionToResponse(state.Session),
		User:    converter.UserProfileToResponse(state.User),
	}
}

// bearerToken reads an optional "Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}
