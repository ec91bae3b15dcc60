package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// Recovery converts a handler panic into a 500 response. The panic value and
// stack are logged together with the request id so the log line can be
// matched to the client-visible failure.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal_error","message":"error interno del servidor"}`))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
