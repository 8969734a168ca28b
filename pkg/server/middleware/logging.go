package middleware

import (
	"net/http"
	"time"

	"kanjize-hq/kanjize/pkg/telemetry/logging"
	"kanjize-hq/kanjize/pkg/telemetry/metrics"
)

// unmatchedRoute labels requests that no route pattern matched.
const unmatchedRoute = "unmatched"

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// RouteFunc returns the route pattern a request will be dispatched to, or ""
// when nothing matches.
type RouteFunc func(r *http.Request) string

// MuxRoute returns a RouteFunc that asks mux for the matching pattern.
func MuxRoute(mux *http.ServeMux) RouteFunc {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}
}

func routeOf(route RouteFunc, r *http.Request) string {
	if route == nil {
		return ""
	}
	return route(r)
}

// Logging writes one access log line per request and records the request
// in collector under its route pattern. collector may be nil.
func Logging(logger *logging.Logger, collector *metrics.Collector, route RouteFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)
			pattern := routeOf(route, r)

			next.ServeHTTP(rw, r)

			latency := time.Since(start)
			if pattern == "" {
				pattern = unmatchedRoute
			}
			collector.RecordHTTPRequest(pattern, rw.statusCode, latency)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", pattern,
				"status", rw.statusCode,
				"latency_us", latency.Microseconds(),
				"remote_addr", r.RemoteAddr,
			}
			switch {
			case rw.statusCode >= 500:
				logger.ErrorContext(r.Context(), "request completed", args...)
			case rw.statusCode >= 400:
				logger.WarnContext(r.Context(), "request completed", args...)
			default:
				logger.InfoContext(r.Context(), "request completed", args...)
			}
		})
	}
}
