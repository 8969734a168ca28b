package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Conversion directions.
const (
	DirectionToKanji  = "to_kanji"
	DirectionToNumber = "to_number"
)

// Conversion statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ConversionMetrics tracks conversions in both directions.
type ConversionMetrics struct {
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	parseErrorsTotal   *prometheus.CounterVec
	inputLength        *prometheus.HistogramVec
}

// NewConversionMetrics creates and registers conversion metrics with the
// provided registry.
func NewConversionMetrics(namespace string, buckets []float64, registry prometheus.Registerer) *ConversionMetrics {
	cm := &ConversionMetrics{
		conversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversions_total",
				Help:      "Total number of conversions by direction, style and status",
			},
			[]string{"direction", "style", "status"},
		),

		conversionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "conversion_duration_seconds",
				Help:      "Duration of a single conversion in seconds",
				Buckets:   buckets,
			},
			[]string{"direction"},
		),

		parseErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_errors_total",
				Help:      "Total number of rejected numerals by reason",
			},
			[]string{"reason"},
		),

		inputLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "input_length_runes",
				Help:      "Length of conversion inputs in runes",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 9), // 1 to 256
			},
			[]string{"direction"},
		),
	}

	registry.MustRegister(
		cm.conversionsTotal,
		cm.conversionDuration,
		cm.parseErrorsTotal,
		cm.inputLength,
	)

	return cm
}

// RecordConversion records one completed conversion. style is empty for
// kanji to number conversions.
func (cm *ConversionMetrics) RecordConversion(direction, style, status string, duration time.Duration, inputRunes int) {
	cm.conversionsTotal.WithLabelValues(direction, style, status).Inc()
	cm.conversionDuration.WithLabelValues(direction).Observe(duration.Seconds())
	if inputRunes > 0 {
		cm.inputLength.WithLabelValues(direction).Observe(float64(inputRunes))
	}
}

// RecordParseError records a rejected numeral.
func (cm *ConversionMetrics) RecordParseError(reason string) {
	cm.parseErrorsTotal.WithLabelValues(reason).Inc()
}
