package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// ChangeOwnPassword lets the authenticated user rotate their own password.
// The current password must verify against the stored hash. The repository
// bumps token_version in the same statement, so every outstanding refresh
// token dies with the old password.
func (s *Service) ChangeOwnPassword(ctx context.Context, userID int64, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ChangeOwnPassword get user: %w", err)
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return domain.ErrUnauthorized
	}

	if err := s.setPassword(ctx, user.ID, input.NewPassword); err != nil {
		return fmt.Errorf("auth.ChangeOwnPassword: %w", err)
	}

	s.log.InfoContext(ctx, "user changed own password", slog.Int64("user_id", userID))
	return nil
}

// AdminChangePassword sets a new password for any account without knowing
// the old one. Reserved for administrators; the handler enforces the role.
func (s *Service) AdminChangePassword(ctx context.Context, userID int64, newPassword string) error {
	if n := len(newPassword); n < 6 || n > 100 {
		return domain.NewValidationError("new_password", "debe tener entre 6 y 100 caracteres")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("auth.AdminChangePassword get user: %w", err)
	}

	if err := s.setPassword(ctx, userID, newPassword); err != nil {
		return fmt.Errorf("auth.AdminChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "admin reset user password", slog.Int64("user_id", userID))
	return nil
}

func (s *Service) setPassword(ctx context.Context, userID int64, plain string) error {
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ok, err := s.users.UpdatePassword(ctx, userID, hash, ctxutil.ActorID(ctx))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
