// Package persona implements the Persona repository using PostgreSQL.
package persona

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sima-app/sima-backend/internal/adapter/postgres"
	"github.com/sima-app/sima-backend/internal/adapter/postgres/base"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Table is the personas table name, preserved from the production schema.
const Table = "personas_registradas"

var columns = []string{
	"id", "nombre", "apellido", "dni", "fecha_nacimiento", "nacionalidad",
	"direccion", "telefono", "email", "observaciones", "foto_principal",
	"fotos_adicionales", "comisaria", "created_by", "updated_by",
	"deleted_at", "created_at", "updated_at",
}

// searchColumns are the free-text search targets for the q parameter.
var searchColumns = []string{"nombre", "apellido", "dni"}

// Repo provides persona persistence backed by PostgreSQL.
type Repo struct {
	*base.Base[domain.Persona]
}

// New creates a new persona repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		Base: base.New[domain.Persona](pool, base.Config{
			Table:      Table,
			Columns:    columns,
			SoftDelete: true,
		}),
	}
}

// FindByDNI returns the live persona holding the given DNI, excluding the
// row with excludeID when non-zero. Returns domain.ErrNotFound when the DNI
// is free, which is the success case for duplicate checks.
func (r *Repo) FindByDNI(ctx context.Context, dni string, excludeID int64) (*domain.Persona, error) {
	q := r.Select().Where(squirrel.Eq{"dni": dni})
	if excludeID != 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	row, err := r.QueryOne(ctx, q.Limit(1))
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	return row, nil
}

// GetAnyByID returns the persona with the given id regardless of soft-delete
// state. Used where history must stay inspectable after the persona is gone.
func (r *Repo) GetAnyByID(ctx context.Context, id int64) (*domain.Persona, error) {
	q := base.Builder().Select(columns...).From(Table).Where(squirrel.Eq{"id": id})
	row, err := r.QueryOne(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, Table, id)
	}
	return row, nil
}

// SearchPage returns live personas matching the filter, ordered by apellido
// ascending. Unpaginated options return the full filtered set as one page.
func (r *Repo) SearchPage(ctx context.Context, f domain.PersonaFilter, opts domain.ListOptions) (*domain.Page[domain.Persona], error) {
	q := r.filtered(f).OrderBy("apellido ASC, id ASC")

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
	return &domain.Page[domain.Persona]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// SearchAll returns the full filtered set ordered by apellido ascending.
// This unpaginated path backs CSV/XLSX export; limit bounds the result so an
// export cannot pin the whole table in memory.
func (r *Repo) SearchAll(ctx context.Context, f domain.PersonaFilter, limit int) ([]domain.Persona, error) {
	q := r.filtered(f).OrderBy("apellido ASC, id ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	items, err := r.QueryMany(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	return items, nil
}

// Statistics aggregates counts over live personas: the total, the
// per-comisaria grouping (descending) and rows created in the last 30 days.
func (r *Repo) Statistics(ctx context.Context) (*domain.PersonaStats, error) {
	querier := r.Querier(ctx)

	stats := &domain.PersonaStats{}

	sql, args, err := base.Builder().
		Select("COUNT(*)").
		From(Table).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build total count: %w", err)
	}
	if err := querier.QueryRow(ctx, sql, args...).Scan(&stats.TotalPersonas); err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}

	sql, args, err = base.Builder().
		Select("comisaria", "COUNT(*) AS count").
		From(Table).
		Where(squirrel.Eq{"deleted_at": nil}).
		GroupBy("comisaria").
		OrderBy("count DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comisaria grouping: %w", err)
	}
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	stats.PorComisaria, err = pgx.CollectRows(rows, pgx.RowToStructByName[domain.ComisariaCount])
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}

	sql, args, err = base.Builder().
		Select("COUNT(*)").
		From(Table).
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.Expr("created_at >= now() - INTERVAL '30 days'")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent count: %w", err)
	}
	if err := querier.QueryRow(ctx, sql, args...).Scan(&stats.Ultimos30Dias); err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}

	return stats, nil
}

// filtered builds the live-rows select with the filter predicates applied.
func (r *Repo) filtered(f domain.PersonaFilter) squirrel.SelectBuilder {
	q := r.Select()
	if f.Q != "" {
		q = q.Where(base.ContainsAny(f.Q, searchColumns))
	}
	if f.DNI != "" {
		q = q.Where(squirrel.Eq{"dni": f.DNI})
	}
	if f.Comisaria != "" {
		q = q.Where(squirrel.ILike{"comisaria": "%" + base.EscapeLike(f.Comisaria) + "%"})
	}
	return q
}

func (r *Repo) count(ctx context.Context, f domain.PersonaFilter) (int64, error) {
	q := base.Builder().
		Select("COUNT(*)").
		From(Table).
		Where(squirrel.Eq{"deleted_at": nil})
	if f.Q != "" {
		q = q.Where(base.ContainsAny(f.Q, searchColumns))
	}
	if f.DNI != "" {
		q = q.Where(squirrel.Eq{"dni": f.DNI})
	}
	if f.Comisaria != "" {
		q = q.Where(squirrel.ILike{"comisaria": "%" + base.EscapeLike(f.Comisaria) + "%"})
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
