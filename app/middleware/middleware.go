package appMiddleware

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Recoverer catches panics from downstream handlers and turns them into a
// JSON 500 response instead of a dropped connection. Streaming handlers that
// already wrote headers only get the panic logged; the body shape is fixed
// once the stream is open.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// The connection is gone, let net/http unwind normally
					panic(rvr)
				}

				logger.ErrorContext(r.Context(), "Handler panicked",
					slog.Any("panic", rvr),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprintf(w, `{"error":"Something went wrong!","message":%q}`, fmt.Sprint(rvr))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
