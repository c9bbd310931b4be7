package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/feastboard/admin-api/internal/config"
	"github.com/feastboard/admin-api/internal/identity"
	"github.com/feastboard/admin-api/internal/platform/expo"
	"github.com/feastboard/admin-api/internal/platform/gotrue"
	"github.com/feastboard/admin-api/internal/platform/postgres"
	"github.com/feastboard/admin-api/internal/service"
	"github.com/feastboard/admin-api/internal/service/auth"
	"github.com/feastboard/admin-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	restaurantStore store.RestaurantStore
	orderStore      store.OrderStore
	riderStore      store.RiderStore
	adminStore      store.AdminStore

	// External clients
	identityProvider identity.Provider
	pushClient       *expo.Client

	// Service interfaces
	jwtService          auth.JWTService
	passwordVerifier    auth.PasswordVerifier
	restaurantService   service.RestaurantService
	riderService        service.RiderService
	notificationService service.NotificationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.restaurantStore = postgres.NewRestaurantStore(db, logger)
	app.orderStore = postgres.NewOrderStore(db, logger)
	app.riderStore = postgres.NewRiderStore(db, logger)
	app.adminStore = postgres.NewAdminStore(db, logger)

	// Initialize the identity provider client
	app.identityProvider, err = gotrue.NewClient(logger, cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider client: %w", err)
	}
	logger.Info("Identity provider client initialized", "base_url", cfg.Identity.BaseURL)

	// Initialize the push notification client
	app.pushClient, err = expo.NewClient(logger, cfg.Push)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize push client: %w", err)
	}

	// Initialize application services
	app.restaurantService = service.NewRestaurantService(
		app.restaurantStore,
		app.orderStore,
		app.identityProvider,
		logger,
	)
	app.riderService = service.NewRiderService(
		db,
		app.riderStore,
		app.identityProvider,
		cfg.Identity.GeneratedEmailDomain,
		logger,
	)
	app.notificationService = service.NewNotificationService(app.pushClient, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
