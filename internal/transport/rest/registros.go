package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/internal/service/export"
	"github.com/sima-app/sima-backend/internal/service/registro"
)

// registroService defines the minimal interface needed by RegistroHandler.
type registroService interface {
	Create(ctx context.Context, input registro.CreateInput) (*domain.Registro, error)
	Update(ctx context.Context, id int64, input registro.UpdateInput) (*domain.Registro, error)
	Delete(ctx context.Context, id int64) error
	Duplicate(ctx context.Context, id int64) (*domain.Registro, error)
	Search(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error)
	GetDetails(ctx context.Context, id int64) (*domain.RegistroDetails, error)
}

// registroExporter renders registro exports.
type registroExporter interface {
	Registros(ctx context.Context, f domain.RegistroFilter, format export.Format) (*export.File, error)
}

// RegistroHandler serves the criminal-record endpoints.
type RegistroHandler struct {
	svc            registroService
	exporter       registroExporter
	log            *slog.Logger
	exposeInternal bool
	pageSize       int
}

// NewRegistroHandler creates a RegistroHandler. defaultPageSize applies when
// a request carries page without pageSize.
func NewRegistroHandler(svc registroService, exporter registroExporter, logger *slog.Logger, exposeInternal bool, defaultPageSize int) *RegistroHandler {
	return &RegistroHandler{
		svc:            svc,
		exporter:       exporter,
		log:            logger.With("handler", "registros"),
		exposeInternal: exposeInternal,
		pageSize:       defaultPageSize,
	}
}

// List handles GET /api/registros. Supports q, persona_id and the same
// format=csv|xlsx download switch as the persona list.
func (h *RegistroHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.RegistroFilter{Q: strings.TrimSpace(q.Get("q"))}
	if raw := q.Get("persona_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.handleError(w, r, domain.NewValidationError("persona_id", "debe ser un entero positivo"))
			return
		}
		filter.PersonaID = &id
	}

	if q.Has("format") {
		format, err := export.ParseFormat(q.Get("format"))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		file, err := h.exporter.Registros(r.Context(), filter, format)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		sendFile(w, file)
		return
	}

	page, err := h.svc.Search(r.Context(), filter, listOptions(r, h.pageSize))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /api/registros/{id}: the registro with its persona, which
// is included even when the persona was soft-deleted.
func (h *RegistroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	details, err := h.svc.GetDetails(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// Create handles POST /api/registros.
func (h *RegistroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input registro.CreateInput
	if err := decodeBody(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/registros/{id}.
func (h *RegistroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var input registro.UpdateInput
	if err := decodeBody(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/registros/{id}.
func (h *RegistroHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Duplicate handles POST /api/registros/{id}/duplicate.
func (h *RegistroHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	clone, err := h.svc.Duplicate(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, clone)
}

func (h *RegistroHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, h.exposeInternal, w, r, err)
}
