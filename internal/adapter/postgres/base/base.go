// Package base implements a generic soft-delete-aware CRUD store shared by
// the entity repositories. It is parameterized by a table name and column
// set; row mapping uses pgx struct scanning over `db` tags.
package base

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sima-app/sima-backend/internal/adapter/postgres"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Builder returns a statement builder with PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Config describes the table a Base operates on.
type Config struct {
	// Table is the table name.
	Table string
	// Columns is the full select column set, matching T's db tags.
	Columns []string
	// SoftDelete marks tables carrying a deleted_at column. When set, every
	// read and write is scoped to deleted_at IS NULL.
	SoftDelete bool
}

// Base provides validated CRUD operations over one table.
type Base[T any] struct {
	pool *pgxpool.Pool
	cfg  Config
}

// New creates a Base for the given table.
func New[T any](pool *pgxpool.Pool, cfg Config) *Base[T] {
	return &Base[T]{pool: pool, cfg: cfg}
}

// Table returns the configured table name.
func (b *Base[T]) Table() string { return b.cfg.Table }

// Querier returns the context transaction when one is active, else the pool.
func (b *Base[T]) Querier(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, b.pool)
}

// Select returns a select builder over the table's column set, already
// scoped to live rows for soft-deleting tables.
func (b *Base[T]) Select() squirrel.SelectBuilder {
	q := Builder().Select(b.cfg.Columns...).From(b.cfg.Table)
	if b.cfg.SoftDelete {
		q = q.Where(squirrel.Eq{"deleted_at": nil})
	}
	return q
}

// Create inserts a row with created_by/updated_by set to the actor and
// returns the generated id.
func (b *Base[T]) Create(ctx context.Context, row map[string]any, actor *int64) (int64, error) {
	values := make(map[string]any, len(row)+2)
	for k, v := range row {
		values[k] = v
	}
	values["created_by"] = actor
	values["updated_by"] = actor

	sql, args, err := Builder().
		Insert(b.cfg.Table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", b.cfg.Table, err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, b.pool).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, b.cfg.Table, 0)
	}
	return id, nil
}

// GetByID returns the live row with the given id, or domain.ErrNotFound.
func (b *Base[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	row, err := b.QueryOne(ctx, b.Select().Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, b.cfg.Table, id)
	}
	return row, nil
}

// Update modifies the live row matching id, stamping updated_by.
// Returns false when no live row matched.
func (b *Base[T]) Update(ctx context.Context, id int64, row map[string]any, actor *int64) (bool, error) {
	values := make(map[string]any, len(row)+1)
	for k, v := range row {
		values[k] = v
	}
	values["updated_by"] = actor

	q := Builder().
		Update(b.cfg.Table).
		SetMap(values).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	if b.cfg.SoftDelete {
		q = q.Where(squirrel.Eq{"deleted_at": nil})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build update %s: %w", b.cfg.Table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, b.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, b.cfg.Table, id)
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete stamps deleted_at on the live row matching id.
// Rows already soft-deleted are not affected.
func (b *Base[T]) SoftDelete(ctx context.Context, id int64, actor *int64) (bool, error) {
	sql, args, err := Builder().
		Update(b.cfg.Table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_by", actor).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build soft delete %s: %w", b.cfg.Table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, b.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, b.cfg.Table, id)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns live rows matching the equality filters. Paginated options
// are clamped; unpaginated options return the full filtered set.
func (b *Base[T]) List(ctx context.Context, opts domain.ListOptions) (*domain.Page[T], error) {
	where := filterConds(opts.Filters)
	return b.page(ctx, where, "id DESC", opts)
}

// Search applies a case-insensitive contains predicate OR-combined across the
// given columns, still scoped to live rows. An empty term or column set
// degrades to List.
func (b *Base[T]) Search(ctx context.Context, term string, columns []string, opts domain.ListOptions) (*domain.Page[T], error) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b.List(ctx, opts)
	}

	where := filterConds(opts.Filters)
	where = append(where, ContainsAny(term, columns))
	return b.page(ctx, where, "id DESC", opts)
}

// page runs the count + items queries for one page of results. Unpaginated
// options skip LIMIT/OFFSET and describe the result as a single full page.
func (b *Base[T]) page(ctx context.Context, where []squirrel.Sqlizer, orderBy string, opts domain.ListOptions) (*domain.Page[T], error) {
	paged := opts.Paginated()
	if paged {
		opts = opts.Clamp()
	}

	countQ := Builder().Select("COUNT(*)").From(b.cfg.Table)
	itemsQ := b.Select()
	if b.cfg.SoftDelete {
		countQ = countQ.Where(squirrel.Eq{"deleted_at": nil})
	}
	for _, cond := range where {
		countQ = countQ.Where(cond)
		itemsQ = itemsQ.Where(cond)
	}

	sql, args, err := countQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count %s: %w", b.cfg.Table, err)
	}

	var total int64
	if err := postgres.QuerierFromCtx(ctx, b.pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, postgres.MapError(err, b.cfg.Table, 0)
	}

	itemsQ = itemsQ.OrderBy(orderBy)
	if paged {
		itemsQ = itemsQ.Limit(uint64(opts.PageSize)).Offset(uint64(opts.Offset()))
	}

	items, err := b.QueryMany(ctx, itemsQ)
	if err != nil {
		return nil, postgres.MapError(err, b.cfg.Table, 0)
	}

	page, size := opts.Page, opts.PageSize
	if !paged {
		page, size = 1, len(items)
	}
	return &domain.Page[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

// QueryMany executes a select builder and scans all rows into T.
func (b *Base[T]) QueryMany(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", b.cfg.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, b.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// QueryOne executes a select builder expecting exactly one row.
func (b *Base[T]) QueryOne(ctx context.Context, q squirrel.SelectBuilder) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", b.cfg.Table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, b.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ContainsAny builds an OR of case-insensitive contains predicates over the
// given columns. LIKE wildcards in the term are escaped so user input cannot
// widen the match.
func ContainsAny(term string, columns []string) squirrel.Sqlizer {
	pattern := "%" + EscapeLike(term) + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, squirrel.ILike{col: pattern})
	}
	return or
}

// EscapeLike escapes LIKE/ILIKE wildcards in user-supplied search terms.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// filterConds converts equality filters into squirrel conditions, skipping
// nil and empty-string values.
func filterConds(filters map[string]any) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	for col, val := range filters {
		if val == nil {
			continue
		}
		if s, ok := val.(string); ok && s == "" {
			continue
		}
		conds = append(conds, squirrel.Eq{col: val})
	}
	return conds
}
