package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys used on conversion spans.
const (
	AttrDirection  = "kanjize.direction"
	AttrStyle      = "kanjize.style"
	AttrDaiji      = "kanjize.daiji"
	AttrInputRunes = "kanjize.input.runes"
	AttrReason     = "kanjize.error.reason"
	AttrRequestID  = "kanjize.request_id"
	AttrErrorType  = "kanjize.error.type"
)

// SetConversionAttributes annotates span with the conversion being performed.
// style is empty for kanji to number conversions.
func SetConversionAttributes(span trace.Span, direction, style string, daiji bool, inputRunes int) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrDirection, direction),
		attribute.Int(AttrInputRunes, inputRunes),
	}
	if style != "" {
		attrs = append(attrs,
			attribute.String(AttrStyle, style),
			attribute.Bool(AttrDaiji, daiji),
		)
	}
	span.SetAttributes(attrs...)
}

// SetReason records why a numeral was rejected.
func SetReason(span trace.Span, reason string) {
	if reason == "" {
		return
	}
	span.SetAttributes(attribute.String(AttrReason, reason))
}
