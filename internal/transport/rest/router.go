package rest

import (
	"net/http"

	"github.com/sima-app/sima-backend/internal/config"
	"github.com/sima-app/sima-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Personas  *PersonaHandler
	Registros *RegistroHandler
	Usuarios  *UserHandler
	Audit     *AuditHandler
	Health    *HealthHandler
}

// RouterDeps carries the cross-cutting pieces the router wires around the
// handlers.
type RouterDeps struct {
	AuthMW    middleware.Middleware
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	UploadDir string
}

// NewRouter builds the full HTTP surface. Auth and refresh stay outside the
// token gate; everything else under /api requires a valid access token.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authLimit := deps.Limiter.Limit("auth", deps.RateLimit.AuthPerMinute)
	exportLimit := deps.Limiter.Limit("export", deps.RateLimit.ExportPerMinute)

	// Public surface.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.Handle("POST /api/auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /api/auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadDir))))

	// Protected surface.
	protected := func(handler http.HandlerFunc) http.Handler {
		return deps.AuthMW(handler)
	}

	mux.Handle("GET /api/auth/me", protected(h.Auth.Me))

	mux.Handle("GET /api/personas", protected(exportGate(exportLimit, h.Personas.List)))
	mux.Handle("POST /api/personas", protected(h.Personas.Create))
	mux.Handle("GET /api/personas/stats", protected(h.Personas.Stats))
	mux.Handle("GET /api/personas/{id}", protected(h.Personas.Get))
	mux.Handle("PUT /api/personas/{id}", protected(h.Personas.Update))
	mux.Handle("DELETE /api/personas/{id}", protected(h.Personas.Delete))

	mux.Handle("GET /api/registros", protected(exportGate(exportLimit, h.Registros.List)))
	mux.Handle("POST /api/registros", protected(h.Registros.Create))
	mux.Handle("GET /api/registros/{id}", protected(h.Registros.Get))
	mux.Handle("PUT /api/registros/{id}", protected(h.Registros.Update))
	mux.Handle("DELETE /api/registros/{id}", protected(h.Registros.Delete))
	mux.Handle("POST /api/registros/{id}/duplicate", protected(h.Registros.Duplicate))

	mux.Handle("GET /api/usuarios", protected(h.Usuarios.List))
	mux.Handle("POST /api/usuarios", protected(h.Usuarios.Create))
	mux.Handle("GET /api/usuarios/me/profile", protected(h.Usuarios.Profile))
	mux.Handle("PUT /api/usuarios/me/password", protected(h.Usuarios.ChangeOwnPassword))
	mux.Handle("GET /api/usuarios/{id}", protected(h.Usuarios.Get))
	mux.Handle("PUT /api/usuarios/{id}", protected(h.Usuarios.Update))
	mux.Handle("DELETE /api/usuarios/{id}", protected(h.Usuarios.Delete))
	mux.Handle("PUT /api/usuarios/{id}/password", protected(h.Usuarios.AdminChangePassword))
	mux.Handle("POST /api/usuarios/{id}/revoke-tokens", protected(h.Usuarios.RevokeTokens))

	mux.Handle("GET /api/audit", protected(h.Audit.List))

	return mux
}

// exportGate applies the export rate limit only to download requests; plain
// JSON listings pass through under the general API limit.
func exportGate(limit middleware.Middleware, next http.HandlerFunc) http.HandlerFunc {
	limited := limit(next)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("format") {
			limited.ServeHTTP(w, r)
			return
		}
		next(w, r)
	}
}
