package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sima-app/sima-backend/internal/auth"
	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/pkg/ctxutil"
)

// CreateResult carries the new account and its generated password. The
// plaintext exists only in this result; it is never stored or logged.
type CreateResult struct {
	User         *domain.User
	TempPassword string
}

// Create provisions a new account with a generated temporary password.
// Username uniqueness considers every existing row: usuarios has no soft
// delete, so any hit is a hard conflict.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	input.Usuario = strings.TrimSpace(strings.ToLower(input.Usuario))
	input.Nombre = strings.TrimSpace(input.Nombre)
	input.Apellido = strings.TrimSpace(input.Apellido)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByUsuario(ctx, input.Usuario)
	if err == nil {
		return nil, fmt.Errorf("usuario %q: %w", input.Usuario, domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user.Create check usuario: %w", err)
	}

	plain, err := auth.TempPassword()
	if err != nil {
		return nil, fmt.Errorf("user.Create temp password: %w", err)
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("user.Create hash password: %w", err)
	}

	id, err := s.users.Create(ctx, map[string]any{
		"usuario":       input.Usuario,
		"password_hash": hash,
		"nombre":        input.Nombre,
		"apellido":      input.Apellido,
		"rol":           input.Rol,
		"activo":        true,
		"token_version": 0,
	}, ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Create reload: %w", err)
	}

	s.log.InfoContext(ctx, "created user",
		slog.Int64("user_id", id),
		slog.String("usuario", user.Usuario),
		slog.String("rol", user.Rol.String()))
	s.audit.Log(ctx, domain.AuditCreate, domain.EntityUsuario, id, map[string]any{
		"usuario": user.Usuario,
		"rol":     user.Rol.String(),
	})

	return &CreateResult{User: user, TempPassword: plain}, nil
}

// Update patches profile fields, role and active flag. Deactivating an
// account blocks future logins and refreshes; issued access tokens survive
// until expiry.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.empty() {
		return nil, domain.NewValidationError("body", "no hay campos para actualizar")
	}

	row := map[string]any{}
	if input.Nombre != nil {
		row["nombre"] = strings.TrimSpace(*input.Nombre)
	}
	if input.Apellido != nil {
		row["apellido"] = strings.TrimSpace(*input.Apellido)
	}
	if input.Rol != nil {
		row["rol"] = *input.Rol
	}
	if input.Activo != nil {
		row["activo"] = *input.Activo
	}

	ok, err := s.users.Update(ctx, id, row, ctxutil.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Update reload: %w", err)
	}

	s.audit.Log(ctx, domain.AuditUpdate, domain.EntityUsuario, id, auditPayload(input))
	return user, nil
}

func auditPayload(input UpdateInput) map[string]any {
	p := map[string]any{}
	if input.Nombre != nil {
		p["nombre"] = *input.Nombre
	}
	if input.Apellido != nil {
		p["apellido"] = *input.Apellido
	}
	if input.Rol != nil {
		p["rol"] = input.Rol.String()
	}
	if input.Activo != nil {
		p["activo"] = *input.Activo
	}
	return p
}
