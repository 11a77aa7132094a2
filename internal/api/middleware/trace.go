// Package middleware provides HTTP middleware for the API: request
// tracing, request logging, and metrics collection.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/emberdate/onboarding-api/internal/api/shared"
	"github.com/emberdate/onboarding-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a trace-scoped
// logger there. It should be applied early in the middleware chain so all
// subsequent handlers see the trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		// Echo the trace ID so clients can reference it in reports.
		w.Header().Set("X-Trace-Id", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
