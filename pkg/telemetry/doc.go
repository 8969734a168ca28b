// Package telemetry groups the observability packages used by kanjize.
//
// # Components
//
//   - logging: structured logging on log/slog with request and trace fields
//   - metrics: Prometheus counters and histograms for conversions and HTTP
//   - tracing: OpenTelemetry spans exported over OTLP gRPC
//   - health: liveness, readiness and the scheduled conversion self test
//
// Each component is configured from the telemetry section of
// config.Config and can be used on its own.
package telemetry
