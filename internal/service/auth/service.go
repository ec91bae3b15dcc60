// Package auth implements credential login, token refresh and password
// management on top of the stateless token-version revocation scheme.
package auth

import (
	"context"
	"log/slog"

	"github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetActiveByUsuario(ctx context.Context, usuario string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, actor *int64) (bool, error)
}

// tokenManager defines the JWT operations needed by the auth service.
type tokenManager interface {
	SignPair(id domain.Identity) (auth.TokenPair, error)
	VerifyRefresh(token string) (*auth.Claims, error)
}

// passwordHasher defines the password hashing interface needed by the auth service.
type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// Service implements authentication operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	hasher passwordHasher
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenManager, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}
