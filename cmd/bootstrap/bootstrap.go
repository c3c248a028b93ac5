package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/infrastructure/metrics"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, db, err := Connect()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, DB: db}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// Connect loads the configuration, sets up logging and opens the database.
// Commands that need no HTTP server or Redis start here.
func Connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg)
	logrus.Info("Configuration loaded successfully")

	gormLevel := logger.Warn
	if cfg.IsDev() {
		gormLevel = logger.Info
	}
	db, err := database.NewPostgresConnection(cfg.DB, gormLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logrus.Info("Database connected successfully")

	return cfg, db, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(cfg.Metrics.Prefix, registry)

	// Initialize JWT service and validator
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize backend adapters
	sessionStore := service.NewSessionStore(redisClient, log)
	accounts := repository.NewAccountClient(db, sessionStore, jwtService)
	documents := repository.NewDocumentStore(db)
	auditService := service.NewAuditService(log, documents)

	// Initialize usecases
	newAuthProvider := usecase.NewAuthProviderFactory(log, accounts, documents, appMetrics, usecase.BootstrapOptionsFromConfig(cfg.Bootstrap))
	appointmentUsecase := usecase.NewAppointmentUsecase(log, documents, customValidator, appMetrics, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, documents, customValidator, auditService)
	clinicUsecase := usecase.NewClinicUsecase(log, documents, customValidator, auditService)
	feedbackUsecase := usecase.NewFeedbackUsecase(log, documents, customValidator)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, documents)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(newAuthProvider, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	clinicHandler := handler.NewClinicHandler(clinicUsecase)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase)
	specializationHandler := handler.NewSpecializationHandler()
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(newAuthProvider, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)
	loggingMiddleware := middleware.NewLoggingMiddleware(log, appMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		doctorHandler,
		clinicHandler,
		feedbackHandler,
		specializationHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	CloseDB(app.DB)

	cache.CloseRedis(app.RedisClient)
}

// CloseDB closes the pool behind db.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
