// Package audit records who did what to which entity. Writing an audit row
// never fails the operation that triggered it; failures are logged and
// swallowed so a broken audit table cannot take down the main flow.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// auditRepo defines the audit log repository interface needed by the service.
type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) (int64, error)
	ByEntity(ctx context.Context, entity string, entityID int64, limit, offset int) ([]domain.AuditEntry, error)
	ByUser(ctx context.Context, userID int64, limit, offset int, from, to *time.Time) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, limit int, entity, action string) ([]domain.AuditEntry, error)
}

// Service implements audit trail operations.
type Service struct {
	log  *slog.Logger
	repo auditRepo
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, repo auditRepo) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
	}
}

// Log records an audit entry. The actor is taken from the request context.
// Errors are logged, never returned: audit writes are best effort.
func (s *Service) Log(ctx context.Context, action, entity string, entityID int64, payload map[string]any) {
	entry := domain.AuditEntry{
		UserID:   ctxutil.ActorID(ctx),
		Action:   action,
		Entity:   entity,
		EntityID: &entityID,
		Payload:  payload,
	}

	if _, err := s.repo.Create(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "audit write failed",
			slog.String("action", action),
			slog.String("entity", entity),
			slog.Int64("entity_id", entityID),
			slog.Any("error", err))
	}
}

// ByEntity returns the audit trail for one entity, newest first.
func (s *Service) ByEntity(ctx context.Context, entity string, entityID int64, limit, offset int) ([]domain.AuditEntry, error) {
	if err := validEntity(entity); err != nil {
		return nil, err
	}
	entries, err := s.repo.ByEntity(ctx, entity, entityID, clampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("audit.ByEntity: %w", err)
	}
	return entries, nil
}

// ByUser returns actions performed by one user, optionally bounded in time.
func (s *Service) ByUser(ctx context.Context, userID int64, limit, offset int, from, to *time.Time) ([]domain.AuditEntry, error) {
	entries, err := s.repo.ByUser(ctx, userID, clampLimit(limit), max(offset, 0), from, to)
	if err != nil {
		return nil, fmt.Errorf("audit.ByUser: %w", err)
	}
	return entries, nil
}

// Recent returns the latest audit entries, optionally filtered by entity
// and action.
func (s *Service) Recent(ctx context.Context, limit int, entity, action string) ([]domain.AuditEntry, error) {
	if entity != "" {
		if err := validEntity(entity); err != nil {
			return nil, err
		}
	}
	entries, err := s.repo.Recent(ctx, clampLimit(limit), entity, action)
	if err != nil {
		return nil, fmt.Errorf("audit.Recent: %w", err)
	}
	return entries, nil
}

func validEntity(entity string) error {
	switch entity {
	case domain.EntityPersona, domain.EntityRegistro, domain.EntityUsuario:
		return nil
	}
	return domain.NewValidationError("entity", "entidad desconocida")
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	return limit
}
