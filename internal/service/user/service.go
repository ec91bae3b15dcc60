// Package user implements account administration: creating accounts with
// generated passwords, updating profiles and roles, revoking sessions and
// removing accounts. Every operation here is admin-only except profile
// reads, which the handlers scope to the caller.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsuario(ctx context.Context, usuario string) (*domain.User, error)
	Create(ctx context.Context, row map[string]any, actor *int64) (int64, error)
	Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error)
	List(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.User], error)
	IncrementTokenVersion(ctx context.Context, id int64) (bool, error)
	HardDelete(ctx context.Context, id int64) (bool, error)
}

// passwordHasher defines the hashing interface needed by the service.
type passwordHasher interface {
	Hash(plain string) (string, error)
}

// auditLogger records mutating actions. Implemented by the audit service.
type auditLogger interface {
	Log(ctx context.Context, action, entity string, entityID int64, payload map[string]any)
}

// Service implements user administration operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	audit  auditLogger
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, hasher passwordHasher, audit auditLogger) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		hasher: hasher,
		audit:  audit,
	}
}

// GetByID returns one account.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: %w", err)
	}
	return user, nil
}

// List returns a page of accounts ordered newest first.
func (s *Service) List(ctx context.Context, opts domain.ListOptions) (*domain.Page[domain.User], error) {
	page, err := s.users.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return page, nil
}

// RevokeAllTokens bumps the account's token_version so every outstanding
// refresh token stops working. Already-issued access tokens keep working
// until they expire.
func (s *Service) RevokeAllTokens(ctx context.Context, id int64) error {
	ok, err := s.users.IncrementTokenVersion(ctx, id)
	if err != nil {
		return fmt.Errorf("user.RevokeAllTokens: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "revoked all tokens", slog.Int64("user_id", id))
	s.audit.Log(ctx, domain.AuditUpdate, domain.EntityUsuario, id, map[string]any{"revoked_tokens": true})
	return nil
}

// Delete removes an account permanently. Self-deletion is rejected so an
// administrator cannot lock themselves out mid-session.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if actor := ctxutil.ActorID(ctx); actor != nil && *actor == id {
		return domain.NewValidationError("id", "no puede eliminar su propia cuenta")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("user.Delete get: %w", err)
	}

	ok, err := s.users.HardDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "deleted user",
		slog.Int64("user_id", id),
		slog.String("usuario", user.Usuario))
	s.audit.Log(ctx, domain.AuditDelete, domain.EntityUsuario, id, map[string]any{"usuario": user.Usuario})
	return nil
}
