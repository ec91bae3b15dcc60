package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// Logger returns middleware that writes one structured line per request:
// method, path, status, bytes written, duration, request_id, and user_id
// when an identity is present. Responses with a 5xx status log at error
// level so server faults stand out from normal traffic.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if id, ok := ctxutil.IdentityFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.Int64("user_id", id.ID))
			}

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// responseRecorder captures the status code and body size. Only the first
// WriteHeader call counts; later calls pass through so net/http can still
// emit its superfluous-call warning.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	decided bool
}

func (r *responseRecorder) WriteHeader(code int) {
	if !r.decided {
		r.status = code
		r.decided = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.decided = true
	n, err := r.ResponseWriter.Write(p)
	r.bytes += int64(n)
	return n, err
}
