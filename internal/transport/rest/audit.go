package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/internal/transport/middleware"
)

// auditService defines the minimal interface needed by AuditHandler.
type auditService interface {
	Recent(ctx context.Context, limit int, entity, action string) ([]domain.AuditEntry, error)
	ByEntity(ctx context.Context, entity string, entityID int64, limit, offset int) ([]domain.AuditEntry, error)
	ByUser(ctx context.Context, userID int64, limit, offset int, from, to *time.Time) ([]domain.AuditEntry, error)
}

// AuditHandler serves the audit trail, admin only.
type AuditHandler struct {
	svc            auditService
	log            *slog.Logger
	exposeInternal bool
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger, exposeInternal bool) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit"), exposeInternal: exposeInternal}
}

// List handles GET /api/audit. Without filters it returns recent activity;
// entity+entity_id or user_id narrow the trail.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	entity := q.Get("entity")
	if rawID := q.Get("entity_id"); entity != "" && rawID != "" {
		entityID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || entityID <= 0 {
			h.handleError(w, r, domain.NewValidationError("entity_id", "debe ser un entero positivo"))
			return
		}
		entries, err := h.svc.ByEntity(r.Context(), entity, entityID, limit, offset)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	if rawUser := q.Get("user_id"); rawUser != "" {
		userID, err := strconv.ParseInt(rawUser, 10, 64)
		if err != nil || userID <= 0 {
			h.handleError(w, r, domain.NewValidationError("user_id", "debe ser un entero positivo"))
			return
		}
		from, err := parseTime(q.Get("from"))
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("from", "debe ser una fecha RFC 3339"))
			return
		}
		to, err := parseTime(q.Get("to"))
		if err != nil {
			h.handleError(w, r, domain.NewValidationError("to", "debe ser una fecha RFC 3339"))
			return
		}
		entries, err := h.svc.ByUser(r.Context(), userID, limit, offset, from, to)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	entries, err := h.svc.Recent(r.Context(), limit, entity, q.Get("action"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *AuditHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, h.exposeInternal, w, r, err)
}

func parseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
