package persona

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// Create registers a new persona. The DNI must be free among live rows; a
// soft-deleted row holding the same DNI does not block. The pre-check here
// is advisory, the partial unique index is the final arbiter, so a race
// between two concurrent creates still surfaces as ErrConflict.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Persona, error) {
	input.Sanitize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkDNI(ctx, input.DNI, 0); err != nil {
		return nil, err
	}

	id, err := s.personas.Create(ctx, input.row(), ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("persona.Create: %w", err)
	}

	created, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.Create reload: %w", err)
	}

	s.log.InfoContext(ctx, "created persona",
		slog.Int64("persona_id", id),
		slog.String("dni", created.DNI))
	s.audit.Log(ctx, domain.AuditCreate, domain.EntityPersona, id, map[string]any{
		"dni":      created.DNI,
		"nombre":   created.Nombre,
		"apellido": created.Apellido,
	})

	return created, nil
}

// Update patches a live persona. When the DNI changes the uniqueness check
// runs again, excluding the row's own id so saving without changes passes.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Persona, error) {
	input.Sanitize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.Update get: %w", err)
	}

	if input.DNI != nil && *input.DNI != current.DNI {
		if err := s.checkDNI(ctx, *input.DNI, id); err != nil {
			return nil, err
		}
	}

	row := input.row()
	if len(row) == 0 {
		return current, nil
	}

	ok, err := s.personas.Update(ctx, id, row, ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("persona.Update: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	updated, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.Update reload: %w", err)
	}

	s.audit.Log(ctx, domain.AuditUpdate, domain.EntityPersona, id, map[string]any{
		"fields": rowKeys(row),
	})
	return updated, nil
}

// Delete soft-deletes a persona. Its registros stay live and its DNI
// becomes reusable immediately.
func (s *Service) Delete(ctx context.Context, id int64) error {
	persona, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("persona.Delete get: %w", err)
	}

	ok, err := s.personas.SoftDelete(ctx, id, ctxutil.ActorID(ctx))
	if err != nil {
		return fmt.Errorf("persona.Delete: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "deleted persona",
		slog.Int64("persona_id", id),
		slog.String("dni", persona.DNI))
	s.audit.Log(ctx, domain.AuditDelete, domain.EntityPersona, id, map[string]any{
		"dni": persona.DNI,
	})
	return nil
}

func (s *Service) checkDNI(ctx context.Context, dni string, excludeID int64) error {
	_, err := s.personas.FindByDNI(ctx, dni, excludeID)
	if err == nil {
		return fmt.Errorf("dni %s: %w", dni, domain.ErrConflict)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("check dni: %w", err)
}

func rowKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	return keys
}
