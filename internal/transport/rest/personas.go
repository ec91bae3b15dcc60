package rest

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/internal/service/export"
	"github.com/sima-app/sima-backend/internal/service/persona"
)

// personaService defines the minimal interface needed by PersonaHandler.
type personaService interface {
	Create(ctx context.Context, input persona.CreateInput) (*domain.Persona, error)
	Update(ctx context.Context, id int64, input persona.UpdateInput) (*domain.Persona, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f domain.PersonaFilter, opts domain.ListOptions) (*domain.Page[domain.Persona], error)
	GetDetails(ctx context.Context, id int64) (*domain.PersonaDetails, error)
	Statistics(ctx context.Context) (*domain.PersonaStats, error)
}

// personaExporter renders persona exports.
type personaExporter interface {
	Personas(ctx context.Context, f domain.PersonaFilter, format export.Format) (*export.File, error)
}

// photoStore stores uploaded photo files.
type photoStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	SaveAll(fhs []*multipart.FileHeader) ([]string, error)
}

// PersonaHandler serves the persona catalog endpoints.
type PersonaHandler struct {
	svc            personaService
	exporter       personaExporter
	photos         photoStore
	log            *slog.Logger
	exposeInternal bool
	pageSize       int
}

// NewPersonaHandler creates a PersonaHandler. defaultPageSize applies when a
// request carries page without pageSize.
func NewPersonaHandler(svc personaService, exporter personaExporter, photos photoStore, logger *slog.Logger, exposeInternal bool, defaultPageSize int) *PersonaHandler {
	return &PersonaHandler{
		svc:            svc,
		exporter:       exporter,
		photos:         photos,
		log:            logger.With("handler", "personas"),
		exposeInternal: exposeInternal,
		pageSize:       defaultPageSize,
	}
}

const maxMultipartMemory = 32 << 20

// List handles GET /api/personas. With format=csv|xlsx the matching rows are
// streamed as a file download instead of a JSON page.
func (h *PersonaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PersonaFilter{
		Q:         strings.TrimSpace(q.Get("q")),
		DNI:       strings.TrimSpace(q.Get("dni")),
		Comisaria: strings.TrimSpace(q.Get("comisaria")),
	}

	if q.Has("format") {
		format, err := export.ParseFormat(q.Get("format"))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		file, err := h.exporter.Personas(r.Context(), filter, format)
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

// Get handles GET /api/personas/{id}: the persona with its nested registros.
func (h *PersonaHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Stats handles GET /api/personas/stats.
func (h *PersonaHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Create handles POST /api/personas. Accepts multipart/form-data with an
// optional fotos[] file set, or a plain JSON body.
func (h *PersonaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input persona.CreateInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.handleError(w, r, domain.NewValidationError("body", "formulario multipart inválido"))
			return
		}
		input = persona.CreateInput{
			Nombre:          r.FormValue("nombre"),
			Apellido:        r.FormValue("apellido"),
			DNI:             r.FormValue("dni"),
			FechaNacimiento: formPtr(r, "fecha_nacimiento"),
			Nacionalidad:    formPtr(r, "nacionalidad"),
			Direccion:       formPtr(r, "direccion"),
			Telefono:        formPtr(r, "telefono"),
			Email:           formPtr(r, "email"),
			Observaciones:   formPtr(r, "observaciones"),
			Comisaria:       formPtr(r, "comisaria"),
		}
		principal, extra, err := h.savePhotos(r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		input.FotoPrincipal = principal
		input.FotosAdicionales = extra
	} else if err := decodeBody(r, &input); err != nil {
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

// Update handles PUT /api/personas/{id}. Photos, when present, replace the
// stored set wholesale; a request without files leaves photos untouched.
func (h *PersonaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var input persona.UpdateInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.handleError(w, r, domain.NewValidationError("body", "formulario multipart inválido"))
			return
		}
		input = persona.UpdateInput{
			Nombre:          formPtr(r, "nombre"),
			Apellido:        formPtr(r, "apellido"),
			DNI:             formPtr(r, "dni"),
			FechaNacimiento: formPtr(r, "fecha_nacimiento"),
			Nacionalidad:    formPtr(r, "nacionalidad"),
			Direccion:       formPtr(r, "direccion"),
			Telefono:        formPtr(r, "telefono"),
			Email:           formPtr(r, "email"),
			Observaciones:   formPtr(r, "observaciones"),
			Comisaria:       formPtr(r, "comisaria"),
		}
		principal, extra, err := h.savePhotos(r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		input.FotoPrincipal = principal
		input.FotosAdicionales = extra
	} else if err := decodeBody(r, &input); err != nil {
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

// Delete handles DELETE /api/personas/{id}.
func (h *PersonaHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// savePhotos stores the fotos[] file set. The first file becomes the main
// photo and the full set is kept as the additional gallery.
func (h *PersonaHandler) savePhotos(r *http.Request) (*string, []string, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	files := r.MultipartForm.File["fotos"]
	if len(files) == 0 {
		return nil, nil, nil
	}

	paths, err := h.photos.SaveAll(files)
	if err != nil {
		return nil, nil, err
	}
	return &paths[0], paths, nil
}

func (h *PersonaHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(h.log, h.exposeInternal, w, r, err)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formPtr returns the form field as a pointer, nil when absent.
func formPtr(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vs, ok := r.MultipartForm.Value[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

func sendFile(w http.ResponseWriter, f *export.File) {
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}
