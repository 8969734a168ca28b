// Package metrics exposes Prometheus metrics for kanjize.
//
// Metrics (with the default "kanjize" namespace):
//
//   - kanjize_conversions_total{direction,style,status}
//   - kanjize_conversion_duration_seconds{direction}
//   - kanjize_parse_errors_total{reason}
//   - kanjize_input_length_runes{direction}
//   - kanjize_http_requests_total{path,code}
//   - kanjize_http_request_duration_seconds{path}
//   - kanjize_config_reloads_total{result}
//   - kanjize_self_test_healthy
//
// Each Collector owns its own registry so tests and multiple servers in one
// process do not collide. When metrics are disabled the Record methods are
// no-ops and the handler serves an empty exposition.
package metrics
