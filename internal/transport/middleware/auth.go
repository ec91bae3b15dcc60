package middleware

import (
	"net/http"
	"strings"

	"github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	VerifyAccess(token string) (*auth.Claims, error)
}

// Auth attaches the token identity to the request context. Requests with a
// missing or unverifiable bearer token are rejected; apply this only to
// protected subtrees. The stored token_version is deliberately not checked
// here: access tokens are short-lived and revocation bites on refresh.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}
			claims, err := verifier.VerifyAccess(token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","message":"token inválido o ausente"}`))
}
