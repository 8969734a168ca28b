// Package server provides the HTTP conversion service.
//
// The server exposes the conversion core over two read-only endpoints and
// ties together configuration, structured logging, Prometheus metrics,
// OpenTelemetry tracing and health checks.
//
// # Basic Usage
//
//	cfg := config.GetConfig()
//
//	srv, err := server.NewServer(cfg, server.Dependencies{
//	    Logger:  logger,
//	    Metrics: metrics.NewCollector(cfg.Telemetry.Metrics, nil),
//	    Tracer:  tracer,
//	    Version: version,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Start blocks until ctx is cancelled, then shuts down gracefully within
// server.shutdown_timeout.
//
// # Routes
//
//   - GET /v1/kanji?number=N - render N; optional style, zero, daiji and
//     compact_thousands override the configured defaults
//   - GET /v1/number?kanji=K - parse K; exact=true also returns fractional
//     values as a rational "a/b"
//   - GET /health - liveness probe
//   - GET /ready - readiness probe backed by the conversion self test
//   - GET /version - build information
//   - GET /metrics - Prometheus exposition (path is configurable)
//
// Failures are answered with a JSON body:
//
//	{"error": {"type": "invalid_numeral", "reason": "unit_order",
//	           "message": "...", "param": "kanji"}}
//
// # Middleware Chain
//
// Requests pass through the following middleware (innermost to outermost):
//  1. Timeout: sets the per-request deadline from server.write_timeout
//  2. ConcurrencyLimit: answers 503 beyond server.max_concurrent_requests
//  3. Logging: access log line and HTTP metrics
//  4. Tracing: server span, trace IDs in the logging context
//  5. RequestID: assigns or propagates X-Request-ID
//  6. Recovery: turns panics into 500 responses
//
// # Reloading
//
// UpdateConfig swaps the conversion defaults, the input length limit and the
// log level without dropping connections. It is called by the configuration
// watcher when kanjize serve runs with --watch.
package server
