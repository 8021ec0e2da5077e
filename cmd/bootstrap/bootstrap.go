package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinic-registry/config"
	deliveryHttp "clinic-registry/internal/delivery/http"
	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/internal/repository"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config    *config.Config
	Log       *logrus.Logger
	Directory usecase.ProfessionalDirectory
	Registry  usecase.AppointmentRegistry
	Server    *http.Server
	Out       io.Writer
}

// New creates a new App from the environment, writing reports to stdout
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg, os.Stdout)
}

// NewWithConfig wires every layer and seeds the sample professionals
func NewWithConfig(cfg *config.Config, out io.Writer) (*App, error) {
	app := &App{
		Config: cfg,
		Out:    out,
	}

	// Reports go to out; keep logs off it in demo mode
	logOutput := io.Writer(os.Stdout)
	if cfg.App.Mode == config.ModeDemo {
		logOutput = os.Stderr
	}
	app.Log = setupLogger(cfg.Log, logOutput)
	app.Log.Info("Configuration loaded successfully")

	// Initialize repositories
	professionalRepo := repository.NewProfessionalRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	app.Directory = usecase.NewProfessionalDirectory(app.Log, professionalRepo)
	app.Registry = usecase.NewAppointmentRegistry(app.Log, appointmentRepo)

	if err := app.seedProfessionals(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed professionals: %w", err)
	}

	if cfg.App.Mode == config.ModeHTTP {
		app.Server = app.initializeServer()
	}

	return app, nil
}

// setupLogger configures a logrus logger from config
func setupLogger(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func (app *App) seedProfessionals(ctx context.Context) error {
	professionals, err := SampleProfessionals()
	if err != nil {
		return err
	}
	for _, professional := range professionals {
		if err := app.Directory.Register(ctx, professional); err != nil {
			return err
		}
	}
	return nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	customValidator := validator.NewValidator()

	// Initialize handlers
	professionalHandler := handler.NewProfessionalHandler(app.Directory, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(app.Registry, app.Directory, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(app.Log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(app.Config.RateLimit.RPS, app.Config.RateLimit.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(professionalHandler, appointmentHandler, corsMiddleware, loggingMiddleware, rateLimitMiddleware)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Config.App.Port),
		Handler: router.Setup(),
	}
}

// Run executes the configured mode
func (app *App) Run() {
	if app.Config.App.Mode != config.ModeHTTP {
		app.RunDemo(context.Background())
		return
	}

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.App.ShutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Log.Info("Server shutdown complete")
}
