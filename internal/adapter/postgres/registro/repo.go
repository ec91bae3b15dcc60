// Package registro implements the criminal-record repository using PostgreSQL.
package registro

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sima-app/sima-backend/internal/adapter/postgres"
	"github.com/sima-app/sima-backend/internal/adapter/postgres/base"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Table is the registros table name, preserved from the production schema.
const Table = "registros_delictuales"

var columns = []string{
	"id", "persona_id", "tipo_delito", "lugar", "estado", "juzgado",
	"detalle", "created_by", "updated_by", "deleted_at",
	"created_at", "updated_at",
}

// searchColumns are the free-text search targets for the q parameter.
var searchColumns = []string{"tipo_delito", "lugar", "estado", "juzgado"}

// Repo provides registro persistence backed by PostgreSQL.
type Repo struct {
	*base.Base[domain.Registro]
}

// New creates a new registro repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		Base: base.New[domain.Registro](pool, base.Config{
			Table:      Table,
			Columns:    columns,
			SoftDelete: true,
		}),
	}
}

// SearchPage returns live registros matching the filter, newest first.
// Unpaginated options return the full filtered set as one page.
func (r *Repo) SearchPage(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error) {
	q := r.filtered(f).OrderBy("id DESC")

	paged := opts.Paginated()
	if paged {
		opts = opts.Clamp()
		q = q.Limit(uint64(opts.PageSize)).Offset(uint64(opts.Offset()))
	}

	items, err := r.QueryMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}

	total, err := r.count(ctx, f)
	if err != nil {
		return nil, err
	}

	page, size := opts.Page, opts.PageSize
	if !paged {
		page, size = 1, len(items)
	}
	return &domain.Page[domain.Registro]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// SearchAll returns the full filtered set newest first. Backs export.
func (r *Repo) SearchAll(ctx context.Context, f domain.RegistroFilter, limit int) ([]domain.Registro, error) {
	q := r.filtered(f).OrderBy("id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	items, err := r.QueryMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	return items, nil
}

// ListByPersona returns all live registros for one persona, newest first.
func (r *Repo) ListByPersona(ctx context.Context, personaID int64) ([]domain.Registro, error) {
	items, err := r.QueryMany(ctx, r.Select().
		Where(squirrel.Eq{"persona_id": personaID}).
		OrderBy("created_at DESC, id DESC"))
	if err != nil {
		return nil, postgres.MapError(err, Table, personaID)
	}
	return items, nil
}

func (r *Repo) filtered(f domain.RegistroFilter) squirrel.SelectBuilder {
	q := r.Select()
	if f.PersonaID != nil {
		q = q.Where(squirrel.Eq{"persona_id": *f.PersonaID})
	}
	if f.Q != "" {
		q = q.Where(base.ContainsAny(f.Q, searchColumns))
	}
	return q
}

func (r *Repo) count(ctx context.Context, f domain.RegistroFilter) (int64, error) {
	q := base.Builder().
		Select("COUNT(*)").
		From(Table).
		Where(squirrel.Eq{"deleted_at": nil})
	if f.PersonaID != nil {
		q = q.Where(squirrel.Eq{"persona_id": *f.PersonaID})
	}
	if f.Q != "" {
		q = q.Where(base.ContainsAny(f.Q, searchColumns))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build filtered count: %w", err)
	}

	var total int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, Table, 0)
	}
	return total, nil
}
