package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sima-app/sima-backend/internal/domain"
	authsvc "github.com/sima-app/sima-backend/internal/service/auth"
	usersvc "github.com/sima-app/sima-backend/internal/service/user"
	"github.com/sima-app/sima-backend/internal/transport/middleware"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Create(ctx context.Context, input usersvc.CreateInput) (*usersvc.CreateResult, error)
	Update(ctx context.Context, id int64, input usersvc.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.User], error)
	RevokeAllTokens(ctx context.Context, id int64) error
}

// passwordService covers the password operations owned by the auth service.
type passwordService interface {
	ChangeOwnPassword(ctx context.Context, userID int64, input authsvc.ChangePasswordInput) error
	AdminChangePassword(ctx context.Context, userID int64, newPassword string) error
}

// UserHandler serves account administration endpoints.
type UserHandler struct {
	svc            userService
	passwords      passwordService
	log            *slog.Logger
	exposeInternal bool
	pageSize       int
}

// NewUserHandler creates a UserHandler. defaultPageSize applies when a
// request carries page without pageSize.
func NewUserHandler(svc userService, passwords passwordService, logger *slog.Logger, exposeInternal bool, defaultPageSize int) *UserHandler {
	return &UserHandler{
		svc:            svc,
		passwords:      passwords,
		log:            logger.With("handler", "usuarios"),
		exposeInternal: exposeInternal,
		pageSize:       defaultPageSize,
	}
}

type createUserResponse struct {
	User         *domain.User `json:"user"`
	TempPassword string       `json:"temp_password"`
}

// List handles GET /api/usuarios (admin).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), listOptions(r, h.pageSize))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /api/usuarios/{id} (admin).
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /api/usuarios (admin). The generated password appears
// once in the response and nowhere else.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	var input usersvc.CreateInput
	if err := decodeBody(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createUserResponse{
		User:         result.User,
		TempPassword: result.TempPassword,
	})
}

// Update handles PUT /api/usuarios/{id} (admin).
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var input usersvc.UpdateInput
	if err := decodeBody(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/usuarios/{id} (admin, hard delete).
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RevokeTokens handles POST /api/usuarios/{id}/revoke-tokens (admin).
func (h *UserHandler) RevokeTokens(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.RevokeAllTokens(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Profile handles GET /api/usuarios/me/profile: the caller's stored row, as
// opposed to the token snapshot served by /api/auth/me.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "token inválido o ausente")
		return
	}

	user, err := h.svc.GetByID(r.Context(), identity.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ChangeOwnPassword handles PUT /api/usuarios/me/password.
func (h *UserHandler) ChangeOwnPassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "token inválido o ausente")
		return
	}

	var input authsvc.ChangePasswordInput
	if err := decodeBody(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.passwords.ChangeOwnPassword(r.Context(), identity.ID, input); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type adminPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// AdminChangePassword handles PUT /api/usuarios/{id}/password (admin).
func (h *UserHandler) AdminChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req adminPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.passwords.AdminChangePassword(r.Context(), id, req.NewPassword); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *UserHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, h.exposeInternal, w, r, err)
}
