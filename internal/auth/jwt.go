package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sima-app/sima-backend/internal/config"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Claims is the signed token payload. The JSON field names are a wire
// contract shared with existing clients and must not change.
type Claims struct {
	UserID       int64  `json:"id"`
	Usuario      string `json:"usuario"`
	Rol          string `json:"rol"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	TokenVersion int    `json:"token_version"`
	jwt.RegisteredClaims
}

// Identity converts the claims back into a domain identity.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{
		ID:           c.UserID,
		Usuario:      c.Usuario,
		Rol:          domain.Role(c.Rol),
		Nombre:       c.Nombre,
		Apellido:     c.Apellido,
		TokenVersion: c.TokenVersion,
	}
}

// TokenPair is one freshly signed access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenManager signs and verifies HS256 access and refresh tokens. The two
// token kinds share the payload shape but are signed with distinct secrets,
// so a leaked access secret cannot be used to mint refresh tokens.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager creates a TokenManager from auth configuration.
// Secrets must be at least 32 characters for HS256 security.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

// SignPair signs an access and a refresh token carrying the same identity
// snapshot, including the user's current token version.
func (m *TokenManager) SignPair(id domain.Identity) (TokenPair, error) {
	access, err := m.sign(id, m.accessSecret, m.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(id, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *TokenManager) sign(id domain.Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       id.ID,
		Usuario:      id.Usuario,
		Rol:          id.Rol.String(),
		Nombre:       id.Nombre,
		Apellido:     id.Apellido,
		TokenVersion: id.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccess parses and validates an access token.
// Bad signature, malformed structure, and expiry all collapse to
// domain.ErrUnauthorized; callers learn nothing beyond "invalid".
func (m *TokenManager) VerifyAccess(token string) (*Claims, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefresh parses and validates a refresh token.
func (m *TokenManager) VerifyRefresh(token string) (*Claims, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) verify(token string, secret []byte) (*Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == 0 {
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
