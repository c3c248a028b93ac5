package http

import (
	"net/http"

	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	appointmentHandler    *handler.AppointmentHandler
	doctorHandler         *handler.DoctorHandler
	clinicHandler         *handler.ClinicHandler
	feedbackHandler       *handler.FeedbackHandler
	specializationHandler *handler.SpecializationHandler
	auditLogHandler       *handler.AuditLogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	loggingMiddleware     *middleware.LoggingMiddleware
	metricsHandler        http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	clinicHandler *handler.ClinicHandler,
	feedbackHandler *handler.FeedbackHandler,
	specializationHandler *handler.SpecializationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		appointmentHandler:    appointmentHandler,
		doctorHandler:         doctorHandler,
		clinicHandler:         clinicHandler,
		feedbackHandler:       feedbackHandler,
		specializationHandler: specializationHandler,
		auditLogHandler:       auditLogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		loggingMiddleware:     loggingMiddleware,
		metricsHandler:        metricsHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Specialization catalog (public)
	api.HandleFunc("/specializations", r.specializationHandler.SearchSpecializations).Methods(http.MethodGet)

	// Signed-in routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/clinics", r.clinicHandler.GetAllClinics).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/feedback", r.feedbackHandler.SubmitFeedback).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Doctor management (admin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Clinic management (admin)
	admin.HandleFunc("/clinics", r.clinicHandler.CreateClinic).Methods(http.MethodPost)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.UpdateClinic).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.DeleteClinic).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS and request logging middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
