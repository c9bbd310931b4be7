package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/feastboard/admin-api/internal/api"
	apiMiddleware "github.com/feastboard/admin-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The dashboard frontend uses POST for every action endpoint,
// so the routes mirror that.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.adminStore,
		app.jwtService,
		app.passwordVerifier,
		time.Duration(app.config.Auth.TokenLifetimeMinutes)*time.Minute,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	restaurantHandler := api.NewRestaurantHandler(app.restaurantService, app.logger)
	riderHandler := api.NewRiderHandler(app.riderService, app.logger)
	notificationHandler := api.NewNotificationHandler(app.notificationService, app.logger)

	// Authentication endpoints (public)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.RefreshToken)

	// Dashboard routes (authenticated)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// Restaurant administration
		r.Post("/restaurants/delete", restaurantHandler.Delete)
		r.Post("/restaurants/update-password", restaurantHandler.UpdatePassword)

		// Rider administration
		r.Post("/riders/create", riderHandler.Create)
		r.Post("/riders", riderHandler.Register)
		r.Post("/riders/delete", riderHandler.Delete)
		r.Post("/riders/reset-password", riderHandler.ResetPassword)

		// Push notifications
		r.Post("/send-notification", notificationHandler.Send)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
