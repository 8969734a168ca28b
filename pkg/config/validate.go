package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"kanjize-hq/kanjize/pkg/kanjize"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All validation errors are collected and
// returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateKanjize(&cfg.Kanjize)...)
	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateKanjize(cfg *KanjizeConfig) []FieldError {
	var errs []FieldError

	if _, err := kanjize.ParseStyle(cfg.Style); err != nil {
		errs = append(errs, FieldError{
			Field:   "kanjize.style",
			Message: fmt.Sprintf("invalid style %q: must be 'all', 'mixed', or 'flat'", cfg.Style),
		})
	}
	if _, err := kanjize.ParseZeroGlyph(cfg.Zero); err != nil {
		errs = append(errs, FieldError{
			Field:   "kanjize.zero",
			Message: fmt.Sprintf("invalid zero glyph %q: must be 'kanji', 'sign', or empty", cfg.Zero),
		})
	}

	return errs
}

func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	} else if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: fmt.Sprintf("invalid listen address %q: %v", cfg.ListenAddress, err),
		})
	}

	durations := []struct {
		field string
		value time.Duration
	}{
		{"server.read_timeout", cfg.ReadTimeout},
		{"server.write_timeout", cfg.WriteTimeout},
		{"server.idle_timeout", cfg.IdleTimeout},
		{"server.shutdown_timeout", cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value < 0 {
			errs = append(errs, FieldError{
				Field:   d.field,
				Message: "timeout must be positive",
			})
		}
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be non-negative",
		})
	}
	if cfg.MaxInputRunes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_input_runes",
			Message: "max input runes must be non-negative",
		})
	}
	if cfg.MaxConcurrentRequests < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_concurrent_requests",
			Message: "max concurrent requests must be non-negative",
		})
	}
	if cfg.TLS.Enabled() {
		errs = append(errs, validateTLSFile("server.tls.cert_file", cfg.TLS.CertFile)...)
		errs = append(errs, validateTLSFile("server.tls.key_file", cfg.TLS.KeyFile)...)
	}

	return errs
}

func validateTLSFile(field, path string) []FieldError {
	if path == "" {
		return []FieldError{{Field: field, Message: "cert_file and key_file must be set together"}}
	}
	if _, err := os.Stat(path); err != nil {
		return []FieldError{{Field: field, Message: fmt.Sprintf("cannot read %s: %v", path, err)}}
	}
	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "console": true}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text', or 'console'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.IsEnabled() {
		if err := ValidateMetricsPath(cfg.Metrics.Path); err != nil {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: err.Error(),
			})
		}
		for i := 1; i < len(cfg.Metrics.DurationBuckets); i++ {
			if cfg.Metrics.DurationBuckets[i] <= cfg.Metrics.DurationBuckets[i-1] {
				errs = append(errs, FieldError{
					Field:   "telemetry.metrics.duration_buckets",
					Message: "buckets must be strictly increasing",
				})
				break
			}
		}
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.endpoint",
			Message: "tracing endpoint is required when tracing is enabled",
		})
	}
	switch cfg.Tracing.Sampler {
	case "always", "never", "ratio":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Tracing.Sampler),
		})
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}

	if cfg.Health.CheckTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.health.check_timeout",
			Message: "check timeout must be positive",
		})
	}
	if cfg.Health.CheckTimeout > 60*time.Second {
		errs = append(errs, FieldError{
			Field:   "telemetry.health.check_timeout",
			Message: "check timeout exceeds reasonable limit (60s)",
		})
	}
	if s := cfg.Health.SelfTestSchedule; s != "" && s != SelfTestOnProbe {
		if _, err := cron.ParseStandard(s); err != nil {
			errs = append(errs, FieldError{
				Field:   "telemetry.health.self_test_schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", s, err),
			})
		}
	}

	return errs
}

// reservedPaths are routed by the HTTP service itself.
var reservedPaths = map[string]bool{
	"/":          true,
	"/health":    true,
	"/ready":     true,
	"/version":   true,
	"/v1/kanji":  true,
	"/v1/number": true,
}

// ValidateMetricsPath reports whether path can be registered as the metrics
// endpoint next to the conversion routes.
func ValidateMetricsPath(path string) error {
	switch {
	case path == "" || path[0] != '/':
		return errors.New("metrics path must start with /")
	case strings.ContainsAny(path, " \t{}"):
		return fmt.Errorf("metrics path %q must not contain whitespace or braces", path)
	case reservedPaths[path]:
		return fmt.Errorf("metrics path %q is already served by the conversion service", path)
	}
	return nil
}
