// Package config provides configuration management for kanjize.
//
// Configuration is loaded from a YAML file, completed with defaults, optionally
// overridden from the environment, and validated before use.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("kanjize.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("kanjize.yaml")
//
//  3. Without a file:
//     cfg := config.NewDefaultConfig()
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention KANJIZE_SECTION_FIELD:
//
//   - KANJIZE_KANJIZE_STYLE overrides kanjize.style
//   - KANJIZE_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - KANJIZE_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Example Configuration
//
//	kanjize:
//	  style: mixed
//	  use_daiji: false
//	  compact_thousands: true
//
//	server:
//	  listen_address: "127.0.0.1:8080"
//	  max_input_runes: 256
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: json
//	  health:
//	    self_test_schedule: "@every 1m"
//
// # Reloading
//
// Watcher observes the configuration file with fsnotify and calls back after
// a debounce interval, which the server uses to swap in new conversion
// defaults without a restart.
package config
