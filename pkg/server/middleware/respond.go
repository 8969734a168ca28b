package middleware

import (
	"encoding/json"
	"net/http"

	"kanjize-hq/kanjize/pkg/server/types"
)

// WriteError writes resp as JSON with the status code of its type.
func WriteError(w http.ResponseWriter, resp *types.ErrorResponse) {
	WriteJSON(w, resp.Error.HTTPStatusCode(), resp)
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
