package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/emberdate/onboarding-api/internal/api"
	apiMiddleware "github.com/emberdate/onboarding-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(apiMiddleware.Metrics(app.metrics))

	analyzeHandler := api.NewAnalyzeHandler(app.analyzer, app.logger)
	r.Post("/analyze", analyzeHandler.Analyze)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
