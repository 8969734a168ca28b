package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"kanjize-hq/kanjize/pkg/config"
)

// Collector owns the registry and every metric kanjize records.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	conversion *ConversionMetrics
	http       *HTTPMetrics

	configReloads  *prometheus.CounterVec
	selfTestHealth prometheus.Gauge
}

// NewCollector creates a collector from the telemetry.metrics configuration.
// If registry is nil a new one is created, with the Go runtime and process
// collectors registered.
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}
	buckets := cfg.DurationBuckets
	if len(buckets) == 0 {
		buckets = config.DefaultDurationBuckets
	}

	c := &Collector{
		enabled:    cfg.IsEnabled(),
		registry:   registry,
		conversion: NewConversionMetrics(namespace, buckets, registry),
		http:       NewHTTPMetrics(namespace, registry),
		configReloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of configuration reload attempts by result",
			},
			[]string{"result"},
		),
		selfTestHealth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "self_test_healthy",
			Help:      "Whether the last conversion self test passed (1) or failed (0)",
		}),
	}
	registry.MustRegister(c.configReloads, c.selfTestHealth)

	return c
}

// Enabled reports whether recording is active.
func (c *Collector) Enabled() bool {
	return c != nil && c.enabled
}

// Registry returns the registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordConversion records a completed conversion.
//
// Parameters:
//   - direction: DirectionToKanji or DirectionToNumber
//   - style: output style for DirectionToKanji, empty otherwise
//   - status: StatusSuccess or StatusError
//   - duration: time spent converting
//   - inputRunes: length of the input
func (c *Collector) RecordConversion(direction, style, status string, duration time.Duration, inputRunes int) {
	if !c.Enabled() {
		return
	}
	c.conversion.RecordConversion(direction, style, status, duration, inputRunes)
}

// RecordParseError records a numeral rejected for reason.
func (c *Collector) RecordParseError(reason string) {
	if !c.Enabled() {
		return
	}
	c.conversion.RecordParseError(reason)
}

// RecordHTTPRequest records a request served by the API.
func (c *Collector) RecordHTTPRequest(path string, code int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.http.RecordRequest(path, code, duration)
}

// RecordConfigReload records a configuration reload attempt.
func (c *Collector) RecordConfigReload(success bool) {
	if !c.Enabled() {
		return
	}
	result := StatusSuccess
	if !success {
		result = StatusError
	}
	c.configReloads.WithLabelValues(result).Inc()
}

// SetSelfTestHealthy records the outcome of the latest self test.
func (c *Collector) SetSelfTestHealthy(healthy bool) {
	if !c.Enabled() {
		return
	}
	if healthy {
		c.selfTestHealth.Set(1)
	} else {
		c.selfTestHealth.Set(0)
	}
}
