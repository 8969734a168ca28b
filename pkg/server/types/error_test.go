package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"kanjize-hq/kanjize/pkg/kanjize"
)

func TestFromError(t *testing.T) {
	_, parseErr := kanjize.KanjiToNumber("万")
	_, cfgErr := kanjize.NewConfiguration(kanjize.WithStyle("vertical"))

	tests := []struct {
		name       string
		err        error
		wantType   string
		wantReason string
		wantCode   int
	}{
		{"numeral", parseErr, ErrorTypeInvalidNumeral, string(kanjize.ReasonMissingQuantity), http.StatusBadRequest},
		{"wrapped numeral", fmt.Errorf("line 3: %w", parseErr), ErrorTypeInvalidNumeral, string(kanjize.ReasonMissingQuantity), http.StatusBadRequest},
		{"configuration", cfgErr, ErrorTypeInvalidConfiguration, "style", http.StatusBadRequest},
		{"range", fmt.Errorf("too big: %w", kanjize.ErrOutOfRange), ErrorTypeOutOfRange, "", http.StatusBadRequest},
		{"unknown", errors.New("boom"), ErrorTypeServerError, "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := FromError(tt.err, "kanji")
			if resp.Error.Type != tt.wantType {
				t.Errorf("type = %q, want %q", resp.Error.Type, tt.wantType)
			}
			if resp.Error.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", resp.Error.Reason, tt.wantReason)
			}
			if resp.Error.HTTPStatusCode() != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.Error.HTTPStatusCode(), tt.wantCode)
			}
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := map[string]int{
		ErrorTypeInvalidRequest:   http.StatusBadRequest,
		ErrorTypeNotFound:         http.StatusNotFound,
		ErrorTypeMethodNotAllowed: http.StatusMethodNotAllowed,
		ErrorTypeGatewayTimeout:   http.StatusGatewayTimeout,
		ErrorTypeOverloaded:       http.StatusServiceUnavailable,
		ErrorTypeServerError:      http.StatusInternalServerError,
	}
	for typ, want := range tests {
		d := ErrorDetail{Type: typ}
		if got := d.HTTPStatusCode(); got != want {
			t.Errorf("%s: got %d, want %d", typ, got, want)
		}
	}
}
