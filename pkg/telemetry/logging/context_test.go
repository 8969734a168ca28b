package logging

import (
	"context"
	"testing"
)

func TestContextAccessors(t *testing.T) {
	tests := []struct {
		name string
		with func(context.Context, string) context.Context
		get  func(context.Context) string
	}{
		{"request id", WithRequestID, GetRequestID},
		{"trace id", WithTraceID, GetTraceID},
		{"span id", WithSpanID, GetSpanID},
		{"operation", WithOperation, GetOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(context.Background()); got != "" {
				t.Errorf("empty context returned %q", got)
			}
			ctx := tt.with(context.Background(), "value")
			if got := tt.get(ctx); got != "value" {
				t.Errorf("got %q, want %q", got, "value")
			}
		})
	}
}

func TestExtractContextFields(t *testing.T) {
	ctx := WithOperation(WithRequestID(context.Background(), "r"), "op")
	fields := extractContextFields(ctx)

	want := []any{"request_id", "r", "operation", "op"}
	if len(fields) != len(want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("fields[%d] = %v, want %v", i, fields[i], want[i])
		}
	}

	if extractContextFields(nil) != nil {
		t.Error("nil context should yield no fields")
	}
}
