// Package persona implements the registered-persons catalog: create, update,
// soft delete, search, detail assembly and aggregate statistics.
package persona

import (
	"context"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
)

// personaRepo defines the persona repository interface needed by the service.
type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
	GetAnyByID(ctx context.Context, id int64) (*domain.Persona, error)
	Create(ctx context.Context, row map[string]any, actor *int64) (int64, error)
	Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error)
	SoftDelete(ctx context.Context, id int64, actor *int64) (bool, error)
	FindByDNI(ctx context.Context, dni string, excludeID int64) (*domain.Persona, error)
	SearchPage(ctx context.Context, f domain.PersonaFilter, opts domain.ListOptions) (*domain.Page[domain.Persona], error)
	Statistics(ctx context.Context) (*domain.PersonaStats, error)
}

// registroRepo lists the criminal records of one persona.
type registroRepo interface {
	ListByPersona(ctx context.Context, personaID int64) ([]domain.Registro, error)
}

// auditLogger records mutating actions. Implemented by the audit service.
type auditLogger interface {
	Log(ctx context.Context, action, entity string, entityID int64, payload map[string]any)
}

// Service implements persona operations.
type Service struct {
	log       *slog.Logger
	personas  personaRepo
	registros registroRepo
	audit     auditLogger
}

// NewService creates a new persona service instance.
func NewService(logger *slog.Logger, personas personaRepo, registros registroRepo, audit auditLogger) *Service {
	return &Service{
		log:       logger.With("service", "persona"),
		personas:  personas,
		registros: registros,
		audit:     audit,
	}
}
