// Package logging provides structured logging for kanjize built on log/slog.
//
// A Logger is created from the telemetry.logging section of the
// configuration and writes JSON, text, or console output. Context-aware
// methods attach the request and trace identifiers stored in the context, so
// log lines emitted while serving a conversion request can be correlated with
// the access log and with traces.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//		return err
//	}
//	ctx = logging.WithRequestID(ctx, "req-123")
//	logger.InfoContext(ctx, "conversion completed", "direction", "to_kanji")
//
// Logger.Slog exposes a *slog.Logger for packages that accept one directly;
// it carries the same context enrichment.
package logging
