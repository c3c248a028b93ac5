package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/response"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type stubAppointments struct {
	listErr   error
	bookErr   error
	cancelErr error

	gotViewer *entity.UserProfile
	gotID     string
	gotDate   string
}

func (s *stubAppointments) ListAppointments(ctx context.Context, viewer *entity.UserProfile, date string) (*dto.AppointmentListResponse, error) {
	s.gotViewer, s.gotDate = viewer, date
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
}

func (s *stubAppointments) BookAppointment(ctx context.Context, viewer *entity.UserProfile, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	s.gotViewer = viewer
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return &dto.AppointmentResponse{ID: "a1", DoctorID: req.DoctorID, UserID: viewer.UserID, Status: "booked"}, nil
}

func (s *stubAppointments) CancelAppointment(ctx context.Context, viewer *entity.UserProfile, appointmentID, date string) (*dto.AppointmentListResponse, error) {
	s.gotViewer, s.gotID, s.gotDate = viewer, appointmentID, date
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
}

type stubProvider struct {
	state     usecase.AuthState
	loginErr  error
	regErr    error
	logoutErr error
}

func (p *stubProvider) Start(ctx context.Context) {}
func (p *stubProvider) RefreshUser(ctx context.Context) (*entity.UserProfile, error) {
	return p.state.User, nil
}
func (p *stubProvider) Login(ctx context.Context, email, password string) error { return p.loginErr }
func (p *stubProvider) Register(ctx context.Context, email, password, name string) error {
	return p.regErr
}
func (p *stubProvider) Logout(ctx context.Context) error { return p.logoutErr }
func (p *stubProvider) Snapshot() usecase.AuthState    { return p.state }

var viewer = &entity.UserProfile{ID: "p1", UserID: "u1", Email: "ana@example.com", Role: entity.RoleUser}

func withViewer(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithProfile(r.Context(), viewer))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	t.Run("passes viewer and date", func(t *testing.T) {
		stub := &stubAppointments{}
		h := NewAppointmentHandler(stub)

		req := withViewer(httptest.NewRequest(http.MethodGet, "/appointments?date=2024-03-10", nil))
		w := httptest.NewRecorder()
		h.ListAppointments(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if stub.gotViewer != viewer || stub.gotDate != "2024-03-10" {
			t.Errorf("unexpected arguments: viewer=%v date=%q", stub.gotViewer, stub.gotDate)
		}
		if resp := decodeResponse(t, w); !resp.Success {
			t.Error("expected success response")
		}
	})

	t.Run("no profile", func(t *testing.T) {
		h := NewAppointmentHandler(&stubAppointments{})
		w := httptest.NewRecorder()
		h.ListAppointments(w, httptest.NewRequest(http.MethodGet, "/appointments", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		h := NewAppointmentHandler(&stubAppointments{listErr: fmt.Errorf("list: %w", context.DeadlineExceeded)})
		w := httptest.NewRecorder()
		h.ListAppointments(w, withViewer(httptest.NewRequest(http.MethodGet, "/appointments", nil)))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestAppointmentHandler_BookAppointment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		bookErr    error
		wantStatus int
	}{
		{"booked", `{"doctor_id":"d1","name":"Ana","phone":"0812","date":"2024-03-10","time":"09:00"}`, nil, http.StatusCreated},
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"validation", `{}`, &usecase.ValidationError{Fields: map[string]string{"doctor_id": "doctor_id is required"}}, http.StatusBadRequest},
		{"unknown doctor", `{"doctor_id":"nope"}`, fmt.Errorf("book: %w", usecase.ErrDoctorNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(&stubAppointments{bookErr: tt.bookErr})
			req := withViewer(httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			h.BookAppointment(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAppointmentHandler_CancelAppointment(t *testing.T) {
	tests := []struct {
		name       string
		cancelErr  error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"expired session", repository.ErrNotAuthenticated, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAppointments{cancelErr: tt.cancelErr}
			h := NewAppointmentHandler(stub)

			router := mux.NewRouter()
			router.HandleFunc("/appointments/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
				h.CancelAppointment(w, withViewer(r))
			}).Methods(http.MethodPost)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/appointments/a7/cancel?date=2024-03-10", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if stub.gotID != "a7" || stub.gotDate != "2024-03-10" {
				t.Errorf("unexpected arguments: id=%q date=%q", stub.gotID, stub.gotDate)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		wantStatus int
	}{
		{"signed in", `{"email":"ana@example.com","password":"secret123"}`, nil, http.StatusOK},
		{"invalid credentials", `{"email":"ana@example.com","password":"wrong"}`, fmt.Errorf("%w: %w", usecase.ErrLoginFailed, repository.ErrInvalidCredentials), http.StatusUnauthorized},
		{"provisioning failure", `{"email":"ana@example.com","password":"secret123"}`, fmt.Errorf("%w: %w", usecase.ErrLoginFailed, usecase.ErrProfileProvisioningFailed), http.StatusInternalServerError},
		{"bad email", `{"email":"nope","password":"secret123"}`, nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{
				loginErr: tt.loginErr,
				state: usecase.AuthState{
					User:    viewer,
					Session: &entity.Session{ID: "s1", Token: "tok-new"},
				},
			}
			var gotToken string
			h := NewAuthHandler(func(token string) usecase.AuthProvider {
				gotToken = token
				return provider
			}, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer tok-old")
			w := httptest.NewRecorder()
			h.Login(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusOK && gotToken != "tok-old" {
				t.Errorf("expected the stale token to reach the provider, got %q", gotToken)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		regErr     error
		wantStatus int
	}{
		{"registered", nil, http.StatusCreated},
		{"duplicate", fmt.Errorf("%w: %w", usecase.ErrRegistrationFailed, repository.ErrDuplicateEmail), http.StatusConflict},
		{"weak password", fmt.Errorf("%w: %w", usecase.ErrRegistrationFailed, repository.ErrWeakPassword), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{regErr: tt.regErr, state: usecase.AuthState{User: viewer}}
			h := NewAuthHandler(func(string) usecase.AuthProvider { return provider }, validator.NewValidator())

			body := `{"email":"ana@example.com","password":"secret123","name":"Ana"}`
			w := httptest.NewRecorder()
			h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	tests := []struct {
		name       string
		logoutErr  error
		wantStatus int
	}{
		{"signed out", nil, http.StatusOK},
		{"no session", fmt.Errorf("%w: %w", usecase.ErrLogoutFailed, repository.ErrNoActiveSession), http.StatusUnauthorized},
		{"backend failure", fmt.Errorf("%w: %w", usecase.ErrLogoutFailed, context.DeadlineExceeded), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{logoutErr: tt.logoutErr}
			h := NewAuthHandler(func(string) usecase.AuthProvider { return provider }, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req = req.WithContext(middleware.WithAuthProvider(req.Context(), provider))
			w := httptest.NewRecorder()
			h.Logout(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		got, ok := bearerToken(req)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}
