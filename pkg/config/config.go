package config

import (
	"time"

	"kanjize-hq/kanjize/pkg/kanjize"
)

// Config is the root configuration structure for kanjize.
type Config struct {
	// Kanjize contains the default conversion settings used by the CLI and
	// by the server when a request does not override them.
	Kanjize KanjizeConfig `yaml:"kanjize"`

	// Server contains HTTP server configuration.
	Server ServerConfig `yaml:"server"`

	// Telemetry contains logging, metrics, tracing and health settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// KanjizeConfig holds the YAML form of kanjize.Configuration.
type KanjizeConfig struct {
	// Style is the output style.
	// Options: "all", "mixed", "flat"
	// Default: "all"
	Style string `yaml:"style"`

	// Zero selects the zero glyph.
	// Options: "kanji" (零), "sign" (〇), "" (derived from style)
	// Default: ""
	Zero string `yaml:"zero"`

	// UseDaiji selects the formal glyph set.
	// Default: false
	UseDaiji bool `yaml:"use_daiji"`

	// CompactThousands renders exact thousands as "5千" in mixed style.
	// Default: true
	CompactThousands *bool `yaml:"compact_thousands"`
}

// Configuration builds the core conversion configuration.
func (k KanjizeConfig) Configuration() (kanjize.Configuration, error) {
	compact := DefaultCompactThousands
	if k.CompactThousands != nil {
		compact = *k.CompactThousands
	}
	return kanjize.NewConfiguration(
		kanjize.WithStyle(kanjize.Style(k.Style)),
		kanjize.WithZero(kanjize.ZeroGlyph(k.Zero)),
		kanjize.WithDaiji(k.UseDaiji),
		kanjize.WithCompactThousands(compact),
	)
}

// ServerConfig contains configuration for the HTTP conversion service.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. It also bounds each request through the timeout middleware.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the keep-alive idle timeout.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 15s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits request header size.
	// Default: 65536
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxInputRunes limits the length of a numeral or number accepted by the
	// conversion endpoints.
	// Default: 256
	MaxInputRunes int `yaml:"max_input_runes"`

	// MaxConcurrentRequests caps in-flight requests. Requests over the
	// limit are answered with 503 Service Unavailable.
	// Default: 512
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`

	// TLS enables HTTPS when both files are set.
	TLS TLSConfig `yaml:"tls"`
}

// TLSConfig names the certificate and key served over HTTPS.
type TLSConfig struct {
	// CertFile is the PEM certificate chain.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the PEM private key.
	KeyFile string `yaml:"key_file"`
}

// Enabled reports whether TLS is configured.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" || t.KeyFile != ""
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`

	// Health contains health check configuration.
	Health HealthConfig `yaml:"health"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "kanjize"
	Namespace string `yaml:"namespace"`

	// DurationBuckets defines histogram buckets for conversion duration (seconds).
	// Default: [0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01]
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// IsEnabled reports whether metrics are enabled, applying the default when
// the field was not set.
func (m MetricsConfig) IsEnabled() bool {
	if m.Enabled == nil {
		return DefaultMetricsEnabled
	}
	return *m.Enabled
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS for the collector connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds span export calls.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// ServiceName is the service name in traces.
	// Default: "kanjize"
	ServiceName string `yaml:"service_name"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	// CheckTimeout bounds each readiness check.
	// Default: 5s
	CheckTimeout time.Duration `yaml:"check_timeout"`

	// SelfTestSchedule is the cron expression for the conversion self test.
	// The value "none" runs the self test on every readiness probe instead.
	// Default: "@every 1m"
	SelfTestSchedule string `yaml:"self_test_schedule"`
}
