// Package tracing provides OpenTelemetry tracing for kanjize.
//
// When tracing is disabled the Tracer hands out noop spans. When enabled,
// spans are batched to an OTLP gRPC collector with the configured sampler,
// and W3C trace context is extracted from incoming HTTP requests so a
// conversion can be followed across services.
//
//	tracer, err := tracing.New(cfg.Telemetry.Tracing, version)
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "kanjize.format")
//	defer span.End()
package tracing
