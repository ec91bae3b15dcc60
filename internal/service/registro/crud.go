package registro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// Create records a new criminal record. The linked persona must exist and
// be live; a soft-deleted persona cannot take new records.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Registro, error) {
	input.Sanitize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.personas.GetByID(ctx, input.PersonaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("persona %d: %w", input.PersonaID, domain.ErrReference)
		}
		return nil, fmt.Errorf("registro.Create check persona: %w", err)
	}

	id, err := s.registros.Create(ctx, input.row(), ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("registro.Create: %w", err)
	}

	created, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("registro.Create reload: %w", err)
	}

	s.log.InfoContext(ctx, "created registro",
		slog.Int64("registro_id", id),
		slog.Int64("persona_id", input.PersonaID),
		slog.String("tipo_delito", created.TipoDelito))
	s.audit.Log(ctx, domain.AuditCreate, domain.EntityRegistro, id, map[string]any{
		"persona_id":  input.PersonaID,
		"tipo_delito": created.TipoDelito,
	})

	return created, nil
}

// Update patches a live registro.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Registro, error) {
	input.Sanitize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := input.row()
	if len(row) == 0 {
		return s.registros.GetByID(ctx, id)
	}

	ok, err := s.registros.Update(ctx, id, row, ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("registro.Update: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	updated, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("registro.Update reload: %w", err)
	}

	s.audit.Log(ctx, domain.AuditUpdate, domain.EntityRegistro, id, map[string]any{
		"fields": rowKeys(row),
	})
	return updated, nil
}

// Delete soft-deletes a registro.
func (s *Service) Delete(ctx context.Context, id int64) error {
	registro, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("registro.Delete get: %w", err)
	}

	ok, err := s.registros.SoftDelete(ctx, id, ctxutil.ActorID(ctx))
	if err != nil {
		return fmt.Errorf("registro.Delete: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "deleted registro",
		slog.Int64("registro_id", id),
		slog.Int64("persona_id", registro.PersonaID))
	s.audit.Log(ctx, domain.AuditDelete, domain.EntityRegistro, id, map[string]any{
		"persona_id": registro.PersonaID,
	})
	return nil
}

// Duplicate clones a live registro as a brand-new record: same descriptive
// fields, fresh id and timestamps, current user as author. Useful when
// registering a repeat offense. Source read and copy insert run in one
// transaction so a concurrent delete cannot produce a copy of a gone record.
func (s *Service) Duplicate(ctx context.Context, id int64) (*domain.Registro, error) {
	var created *domain.Registro
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		src, err := s.registros.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("registro.Duplicate get: %w", err)
		}

		created, err = s.Create(ctx, CreateInput{
			PersonaID:  src.PersonaID,
			TipoDelito: src.TipoDelito,
			Lugar:      src.Lugar,
			Estado:     src.Estado,
			Juzgado:    src.Juzgado,
			Detalle:    src.Detalle,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func rowKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	return keys
}
