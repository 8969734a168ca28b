package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "KANJIZE_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables always take
// precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like LoadConfigWithEnvOverrides but falls back to
// NewDefaultConfig, still honouring environment overrides, when the file does
// not exist and optional is true.
func LoadOrDefault(path string, optional bool) (*Config, error) {
	cfg, err := LoadConfigWithEnvOverrides(path)
	if err == nil {
		return cfg, nil
	}
	if !optional || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = NewDefaultConfig()
	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

type lookupFunc func(key string) (string, bool)

// envOverride binds one KANJIZE_* variable to a configuration field.
type envOverride struct {
	key   string
	apply func(cfg *Config, val string) error
}

func stringField(get func(*Config) *string) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		*get(cfg) = val
		return nil
	}
}

func boolField(get func(*Config) *bool) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		*get(cfg) = b
		return nil
	}
}

func boolPtrField(get func(*Config) **bool) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		*get(cfg) = &b
		return nil
	}
}

func intField(get func(*Config) *int) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		i, err := strconv.Atoi(val)
		if err != nil {
			return err
		}
		*get(cfg) = i
		return nil
	}
}

func floatField(get func(*Config) *float64) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		*get(cfg) = f
		return nil
	}
}

func durationField(get func(*Config) *time.Duration) func(*Config, string) error {
	return func(cfg *Config, val string) error {
		d, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		*get(cfg) = d
		return nil
	}
}

var envOverrides = []envOverride{
	// Conversion overrides
	{"KANJIZE_STYLE", stringField(func(c *Config) *string { return &c.Kanjize.Style })},
	{"KANJIZE_ZERO", stringField(func(c *Config) *string { return &c.Kanjize.Zero })},
	{"KANJIZE_USE_DAIJI", boolField(func(c *Config) *bool { return &c.Kanjize.UseDaiji })},
	{"KANJIZE_COMPACT_THOUSANDS", boolPtrField(func(c *Config) **bool { return &c.Kanjize.CompactThousands })},

	// Server overrides
	{"SERVER_LISTEN_ADDRESS", stringField(func(c *Config) *string { return &c.Server.ListenAddress })},
	{"SERVER_READ_TIMEOUT", durationField(func(c *Config) *time.Duration { return &c.Server.ReadTimeout })},
	{"SERVER_WRITE_TIMEOUT", durationField(func(c *Config) *time.Duration { return &c.Server.WriteTimeout })},
	{"SERVER_IDLE_TIMEOUT", durationField(func(c *Config) *time.Duration { return &c.Server.IdleTimeout })},
	{"SERVER_SHUTDOWN_TIMEOUT", durationField(func(c *Config) *time.Duration { return &c.Server.ShutdownTimeout })},
	{"SERVER_MAX_HEADER_BYTES", intField(func(c *Config) *int { return &c.Server.MaxHeaderBytes })},
	{"SERVER_MAX_INPUT_RUNES", intField(func(c *Config) *int { return &c.Server.MaxInputRunes })},
	{"SERVER_MAX_CONCURRENT_REQUESTS", intField(func(c *Config) *int { return &c.Server.MaxConcurrentRequests })},
	{"SERVER_TLS_CERT_FILE", stringField(func(c *Config) *string { return &c.Server.TLS.CertFile })},
	{"SERVER_TLS_KEY_FILE", stringField(func(c *Config) *string { return &c.Server.TLS.KeyFile })},

	// Telemetry overrides
	{"TELEMETRY_LOGGING_LEVEL", stringField(func(c *Config) *string { return &c.Telemetry.Logging.Level })},
	{"TELEMETRY_LOGGING_FORMAT", stringField(func(c *Config) *string { return &c.Telemetry.Logging.Format })},
	{"TELEMETRY_LOGGING_ADD_SOURCE", boolField(func(c *Config) *bool { return &c.Telemetry.Logging.AddSource })},
	{"TELEMETRY_METRICS_ENABLED", boolPtrField(func(c *Config) **bool { return &c.Telemetry.Metrics.Enabled })},
	{"TELEMETRY_METRICS_PATH", stringField(func(c *Config) *string { return &c.Telemetry.Metrics.Path })},
	{"TELEMETRY_METRICS_NAMESPACE", stringField(func(c *Config) *string { return &c.Telemetry.Metrics.Namespace })},
	{"TELEMETRY_TRACING_ENABLED", boolField(func(c *Config) *bool { return &c.Telemetry.Tracing.Enabled })},
	{"TELEMETRY_TRACING_SAMPLER", stringField(func(c *Config) *string { return &c.Telemetry.Tracing.Sampler })},
	{"TELEMETRY_TRACING_SAMPLE_RATIO", floatField(func(c *Config) *float64 { return &c.Telemetry.Tracing.SampleRatio })},
	{"TELEMETRY_TRACING_ENDPOINT", stringField(func(c *Config) *string { return &c.Telemetry.Tracing.Endpoint })},
	{"TELEMETRY_TRACING_INSECURE", boolField(func(c *Config) *bool { return &c.Telemetry.Tracing.Insecure })},
	{"TELEMETRY_TRACING_SERVICE_NAME", stringField(func(c *Config) *string { return &c.Telemetry.Tracing.ServiceName })},
	{"TELEMETRY_HEALTH_CHECK_TIMEOUT", durationField(func(c *Config) *time.Duration { return &c.Telemetry.Health.CheckTimeout })},
	{"TELEMETRY_HEALTH_SELF_TEST_SCHEDULE", stringField(func(c *Config) *string { return &c.Telemetry.Health.SelfTestSchedule })},
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. A variable whose value cannot be parsed for its field is
// reported as a FieldError rather than silently ignored.
func applyEnvOverrides(cfg *Config, lookup lookupFunc) error {
	var errs []FieldError
	for _, o := range envOverrides {
		name := EnvPrefix + o.key
		val, ok := lookup(name)
		if !ok || val == "" {
			continue
		}
		if err := o.apply(cfg, val); err != nil {
			errs = append(errs, FieldError{
				Field:   name,
				Message: fmt.Sprintf("invalid value %q: %v", val, err),
			})
		}
	}
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// EnvKeys returns the names of all supported environment overrides.
func EnvKeys() []string {
	keys := make([]string, 0, len(envOverrides))
	for _, o := range envOverrides {
		keys = append(keys, EnvPrefix+o.key)
	}
	return keys
}
