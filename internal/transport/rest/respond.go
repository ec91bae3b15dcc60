package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sima-app/sima-backend/internal/domain"
)

// errorResponse is the structured error body shared by every endpoint.
type errorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Code    int                 `json:"code"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message, Code: status})
}

// handleError maps domain errors onto HTTP statuses. Unknown errors are
// logged and answered with an opaque 500; exposeInternal widens the message
// outside production.
func handleError(log *slog.Logger, exposeInternal bool, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: "datos inválidos",
			Code:    http.StatusBadRequest,
			Details: ve.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrRequiredField):
		writeError(w, http.StatusBadRequest, "required_field", err.Error())
	case errors.Is(err, domain.ErrReference):
		writeError(w, http.StatusBadRequest, "invalid_reference", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "acceso denegado")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "recurso no encontrado")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		msg := "error interno del servidor"
		if exposeInternal {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, "internal_error", msg)
	}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "debe ser un entero positivo")
	}
	return id, nil
}

// listOptions reads page/pageSize query parameters. When neither is present
// the options stay unpaginated and the full filtered set comes back; a page
// without a pageSize gets defaultSize. Out-of-range values are clamped by
// the storage layer, not rejected.
func listOptions(r *http.Request, defaultSize int) domain.ListOptions {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	if page > 0 && pageSize <= 0 {
		pageSize = defaultSize
	}
	return domain.ListOptions{Page: page, PageSize: pageSize}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "cuerpo JSON inválido")
	}
	return nil
}
