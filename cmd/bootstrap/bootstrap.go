package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meddesk-hms/config"
	deliveryHttp "meddesk-hms/internal/delivery/http"
	"meddesk-hms/internal/delivery/http/handler"
	"meddesk-hms/internal/delivery/http/middleware"
	"meddesk-hms/internal/infrastructure/database"
	"meddesk-hms/internal/repository"
	"meddesk-hms/internal/service"
	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Log      *logrus.Logger
	Usecases *Usecases
	Server   *http.Server
}

type Usecases struct {
	Auth        usecase.AuthUsecase
	Patient     usecase.PatientUsecase
	Appointment usecase.AppointmentUsecase
	Seed        usecase.SeedUsecase
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsDev())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	credentials, err := service.NewCredentialVerifier(cfg.Auth.CredentialMode, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to configure credentials: %w", err)
	}

	app.Usecases = initializeUsecases(db, app.Log, credentials)
	app.Server = initializeServer(cfg, app.Log, app.Usecases)

	return app, nil
}

// setupLogger configures the standard logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

func initializeUsecases(db *gorm.DB, log *logrus.Logger, credentials service.CredentialVerifier) *Usecases {
	// Initialize repositories
	partyRepo := repository.NewPartyRepository()
	personRepo := repository.NewPersonRepository()
	patientRepo := repository.NewPatientRepository()
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, credentials)

	return &Usecases{
		Auth:        authUsecase,
		Patient:     usecase.NewPatientUsecase(db, log, partyRepo, personRepo, patientRepo),
		Appointment: usecase.NewAppointmentUsecase(db, log, appointmentRepo),
		Seed:        usecase.NewSeedUsecase(db, log, userRepo, authUsecase),
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, uc *Usecases) *http.Server {
	customValidator := validator.NewValidator()

	authHandler := handler.NewAuthHandler(uc.Auth, customValidator)
	patientHandler := handler.NewPatientHandler(uc.Patient, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(uc.Appointment, customValidator)

	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins)

	router := deliveryHttp.NewRouter(authHandler, patientHandler, appointmentHandler, loggingMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// SeedDefaultAdmin provisions the fallback account when enabled. Failures are
// logged and otherwise ignored so the application can start without it.
func (app *App) SeedDefaultAdmin(ctx context.Context) {
	seed := app.Config.Seed
	if !seed.AdminEnabled {
		return
	}

	created, err := app.Usecases.Seed.SeedDefaultAdmin(ctx, seed.AdminUsername, seed.AdminPassword)
	if err != nil {
		app.Log.Warnf("Failed to seed default account: %+v", err)
		return
	}
	if !created {
		app.Log.Debug("Default account not seeded, users already exist")
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close releases the database pool
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
