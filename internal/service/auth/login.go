package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	authpkg "github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/domain"
)

// LoginResult carries the token pair plus a profile snapshot for the client.
type LoginResult struct {
	Tokens authpkg.TokenPair
	User   *domain.User
}

// Login authenticates a user with username + password. An unknown username,
// a wrong password and an inactive account all yield the same
// ErrUnauthorized so the response does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Usuario = strings.TrimSpace(input.Usuario)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetActiveByUsuario(ctx, input.Usuario)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	pair, err := s.tokens.SignPair(domain.IdentityOf(user))
	if err != nil {
		return nil, fmt.Errorf("auth.Login sign tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("usuario", user.Usuario))

	return &LoginResult{Tokens: pair, User: user}, nil
}
