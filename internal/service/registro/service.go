// Package registro implements criminal-record management: create, update,
// soft delete, search, duplication and detail assembly.
package registro

import (
	"context"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
)

// registroRepo defines the registro repository interface needed by the service.
type registroRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Registro, error)
	Create(ctx context.Context, row map[string]any, actor *int64) (int64, error)
	Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error)
	SoftDelete(ctx context.Context, id int64, actor *int64) (bool, error)
	SearchPage(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error)
}

// personaRepo resolves the persona linked to a registro.
type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
	GetAnyByID(ctx context.Context, id int64) (*domain.Persona, error)
}

// auditLogger records mutating actions. Implemented by the audit service.
type auditLogger interface {
	Log(ctx context.Context, action, entity string, entityID int64, payload map[string]any)
}

// txRunner executes a function inside a database transaction. Repositories
// pick the transaction up from the context.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements registro operations.
type Service struct {
	log       *slog.Logger
	registros registroRepo
	personas  personaRepo
	audit     auditLogger
	tx        txRunner
}

// NewService creates a new registro service instance.
func NewService(logger *slog.Logger, registros registroRepo, personas personaRepo, audit auditLogger, tx txRunner) *Service {
	return &Service{
		log:       logger.With("service", "registro"),
		registros: registros,
		personas:  personas,
		audit:     audit,
		tx:        tx,
	}
}
