package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"kanjize-hq/kanjize/pkg/telemetry/logging"
	"kanjize-hq/kanjize/pkg/telemetry/tracing"
)

// Tracing starts a server span for each request, continuing any W3C trace
// context sent by the caller, and stores the trace and span IDs in the
// logging context.
func Tracing(tracer *tracing.Tracer, route RouteFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := "HTTP " + r.Method
			pattern := routeOf(route, r)
			if pattern != "" {
				name = pattern
			}

			ctx := tracing.Extract(r.Context(), r.Header)
			ctx, span := tracer.Start(ctx, name,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			if id := logging.GetRequestID(ctx); id != "" {
				span.SetAttributes(attribute.String(tracing.AttrRequestID, id))
			}
			if traceID := tracing.TraceID(ctx); traceID != "" {
				ctx = logging.WithTraceID(ctx, traceID)
				ctx = logging.WithSpanID(ctx, tracing.SpanID(ctx))
			}

			if pattern != "" {
				span.SetAttributes(attribute.String("http.route", pattern))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.response.status_code", rw.statusCode))
			if rw.statusCode >= 500 {
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			}
		})
	}
}
