package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/emberdate/onboarding-api/internal/platform/metrics"
)

// Metrics records request count and latency into the given recorder.
// Raw URL paths serve as the path label; the API exposes a fixed set of
// routes.
func Metrics(recorder *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			recorder.ObserveRequest(r.Method, r.URL.Path, ww.Status(), time.Since(started))
		})
	}
}
