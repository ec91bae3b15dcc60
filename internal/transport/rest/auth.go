package rest

import (
	"context"
	"log/slog"
	"net/http"

	authsvc "github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/service/auth"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*authsvc.TokenPair, error)
}

// AuthHandler serves login and token refresh.
type AuthHandler struct {
	svc            authService
	log            *slog.Logger
	exposeInternal bool
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger, exposeInternal bool) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth"), exposeInternal: exposeInternal}
}

type loginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Usuario  string `json:"usuario"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Rol      string `json:"rol"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginInput
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User: userResponse{
			ID:       result.User.ID,
			Usuario:  result.User.Usuario,
			Nombre:   result.User.Nombre,
			Apellido: result.User.Apellido,
			Rol:      result.User.Rol.String(),
		},
	})
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshInput
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	pair, err := h.svc.Refresh(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Me handles GET /api/auth/me: the identity baked into the access token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "token inválido o ausente")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:       id.ID,
		Usuario:  id.Usuario,
		Nombre:   id.Nombre,
		Apellido: id.Apellido,
		Rol:      id.Rol.String(),
	})
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, h.exposeInternal, w, r, err)
}
