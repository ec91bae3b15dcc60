package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	authpkg "github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a fresh pair. This is the one
// place the stored token_version is consulted: a token minted before the
// counter was bumped is rejected here even though its signature still
// verifies. The new pair always carries the current counter value.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*authpkg.TokenPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.tokens.VerifyRefresh(input.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if !user.Activo {
		return nil, domain.ErrUnauthorized
	}
	if claims.TokenVersion != user.TokenVersion {
		s.log.InfoContext(ctx, "refresh rejected, stale token version",
			slog.Int64("user_id", user.ID),
			slog.Int("token_version", claims.TokenVersion),
			slog.Int("current_version", user.TokenVersion))
		return nil, domain.ErrUnauthorized
	}

	pair, err := s.tokens.SignPair(domain.IdentityOf(user))
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh sign tokens: %w", err)
	}
	return &pair, nil
}
