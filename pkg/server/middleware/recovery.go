package middleware

import (
	"net/http"
	"runtime/debug"

	"kanjize-hq/kanjize/pkg/server/types"
	"kanjize-hq/kanjize/pkg/telemetry/logging"
)

// Recovery turns a panic in a handler into a 500 response and logs it with
// the stack trace. Internal details are not sent to the client.
func Recovery(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic in handler",
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					WriteError(w, types.NewServerError("An internal error occurred. Please try again later."))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
