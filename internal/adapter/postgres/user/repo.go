// Package user implements the User repository using PostgreSQL.
// Users are hard-deleted only; there is no deleted_at column on usuarios.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sima-app/sima-backend/internal/adapter/postgres"
	"github.com/sima-app/sima-backend/internal/adapter/postgres/base"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Table is the users table name, preserved from the production schema.
const Table = "usuarios"

var columns = []string{
	"id", "usuario", "password_hash", "nombre", "apellido", "rol", "activo",
	"token_version", "created_by", "updated_by", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	*base.Base[domain.User]
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		Base: base.New[domain.User](pool, base.Config{
			Table:   Table,
			Columns: columns,
		}),
	}
}

// GetByUsuario returns the user holding the given username, active or not.
// Username uniqueness checks must consider every row.
func (r *Repo) GetByUsuario(ctx context.Context, usuario string) (*domain.User, error) {
	row, err := r.QueryOne(ctx, r.Select().Where(squirrel.Eq{"usuario": usuario}))
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	return row, nil
}

// GetActiveByUsuario returns the active user holding the given username.
// Used by login so deactivated accounts cannot authenticate.
func (r *Repo) GetActiveByUsuario(ctx context.Context, usuario string) (*domain.User, error) {
	row, err := r.QueryOne(ctx, r.Select().Where(squirrel.Eq{"usuario": usuario, "activo": true}))
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	return row, nil
}

// UpdatePassword stores a new password hash and bumps token_version by one,
// invalidating every outstanding refresh token for the user.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, passwordHash string, actor *int64) (bool, error) {
	sql, args, err := base.Builder().
		Update(Table).
		Set("password_hash", passwordHash).
		Set("token_version", squirrel.Expr("token_version + 1")).
		Set("updated_by", actor).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, Table, id)
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementTokenVersion bumps token_version by one without touching the
// password, revoking all outstanding tokens once their refresh is attempted.
func (r *Repo) IncrementTokenVersion(ctx context.Context, id int64) (bool, error) {
	sql, args, err := base.Builder().
		Update(Table).
		Set("token_version", squirrel.Expr("token_version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, Table, id)
	}
	return tag.RowsAffected() > 0, nil
}

// HardDelete physically removes the user row. Rows created or updated by the
// user keep their back-references nulled by the schema's ON DELETE SET NULL.
func (r *Repo) HardDelete(ctx context.Context, id int64) (bool, error) {
	sql, args, err := base.Builder().
		Delete(Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, Table, id)
	}
	return tag.RowsAffected() > 0, nil
}
