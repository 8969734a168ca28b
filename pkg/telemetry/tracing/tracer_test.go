package tracing

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"kanjize-hq/kanjize/pkg/config"
)

func enabledConfig() config.TracingConfig {
	return config.TracingConfig{
		Enabled:     true,
		Sampler:     SamplerAlways,
		ServiceName: "kanjize-test",
	}
}

func TestNew_Disabled(t *testing.T) {
	tracer, err := New(config.TracingConfig{Enabled: false}, "test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tracer.Enabled() {
		t.Error("expected disabled tracer")
	}

	ctx, span := tracer.Start(context.Background(), "noop")
	defer span.End()
	if TraceID(ctx) != "" {
		t.Error("noop span should not carry a valid trace id")
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewWithSyncer_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer, err := NewWithSyncer(enabledConfig(), "1.2.3", exporter)
	if err != nil {
		t.Fatalf("NewWithSyncer() error = %v", err)
	}
	defer tracer.Shutdown(context.Background())

	ctx, span := tracer.Start(context.Background(), "kanjize.format")
	SetConversionAttributes(span, "to_kanji", "mixed", true, 7)
	if TraceID(ctx) == "" || SpanID(ctx) == "" {
		t.Error("expected valid trace and span ids")
	}
	SetStatus(span, nil)
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Name != "kanjize.format" {
		t.Errorf("span name = %q", got.Name)
	}
	if got.Status.Code != codes.Ok {
		t.Errorf("status = %v, want Ok", got.Status.Code)
	}

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range got.Attributes {
		attrs[kv.Key] = kv.Value
	}
	if attrs[AttrStyle].AsString() != "mixed" || !attrs[AttrDaiji].AsBool() || attrs[AttrInputRunes].AsInt64() != 7 {
		t.Errorf("unexpected attributes: %v", got.Attributes)
	}

	var service string
	for _, kv := range got.Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	if service != "kanjize-test" {
		t.Errorf("service.name = %q", service)
	}
}

func TestSetStatus_Error(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer, err := NewWithSyncer(enabledConfig(), "test", exporter)
	if err != nil {
		t.Fatalf("NewWithSyncer() error = %v", err)
	}
	defer tracer.Shutdown(context.Background())

	_, span := tracer.Start(context.Background(), "kanjize.parse")
	SetReason(span, "unit_order")
	SetStatus(span, errors.New("bad numeral"))
	span.End()

	got := exporter.GetSpans()[0]
	if got.Status.Code != codes.Error || got.Status.Description != "bad numeral" {
		t.Errorf("status = %+v", got.Status)
	}
	if len(got.Events) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
}

func TestNewWithSyncer_InvalidSampler(t *testing.T) {
	cfg := enabledConfig()
	cfg.Sampler = "sometimes"
	if _, err := NewWithSyncer(cfg, "test", tracetest.NewInMemoryExporter()); err == nil {
		t.Error("expected error for unknown sampler")
	}
}

func TestPropagation_RoundTrip(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer, err := NewWithSyncer(enabledConfig(), "test", exporter)
	if err != nil {
		t.Fatalf("NewWithSyncer() error = %v", err)
	}
	defer tracer.Shutdown(context.Background())

	ctx, span := tracer.Start(context.Background(), "client")
	defer span.End()

	headers := http.Header{}
	Inject(ctx, headers)
	if headers.Get("traceparent") == "" {
		t.Fatal("expected traceparent header")
	}

	extracted := Extract(context.Background(), headers)
	if TraceID(extracted) != TraceID(ctx) {
		t.Errorf("extracted trace id %q, want %q", TraceID(extracted), TraceID(ctx))
	}
}

func TestCreateSampler(t *testing.T) {
	tests := []struct {
		strategy string
		ratio    float64
		wantErr  bool
	}{
		{SamplerAlways, 0, false},
		{SamplerNever, 0, false},
		{SamplerRatio, 0.25, false},
		{"", 0.5, false},
		{SamplerRatio, 1.5, true},
		{SamplerRatio, -0.1, true},
		{"unknown", 0, true},
	}
	for _, tt := range tests {
		_, err := createSampler(tt.strategy, tt.ratio)
		if (err != nil) != tt.wantErr {
			t.Errorf("createSampler(%q, %v) error = %v, wantErr %v", tt.strategy, tt.ratio, err, tt.wantErr)
		}
	}
}
