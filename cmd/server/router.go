package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cloudnexus/task-api/internal/api"
	apiMiddleware "github.com/cloudnexus/task-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// CORS for the mobile/web client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSOriginList(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create API handlers using the application's services
	healthHandler := api.NewHealthHandler(app.taskStore, version, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	storageHandler := api.NewStorageHandler(
		app.objectStore,
		app.backupService,
		app.config.Upload.MaxBytes,
		app.logger,
	)

	// Health check endpoint
	r.Get("/health", healthHandler.Health)

	// Task endpoints (public reads)
	r.Get("/items", taskHandler.ListTasks)
	r.Get("/items/{id}", taskHandler.GetTask)

	// Mutating endpoints; gated by the shared static token when configured
	r.Group(func(r chi.Router) {
		if token := app.config.Auth.APIToken; token != "" {
			r.Use(apiMiddleware.RequireAPIToken(token))
		}

		r.Post("/items", taskHandler.CreateTask)
		r.Post("/upload", storageHandler.UploadFile)
		r.Post("/backup", storageHandler.CreateBackup)
	})

	return r
}
