// Package audit implements the append-only audit log repository using
// PostgreSQL. Entries are inserted once and never updated or deleted.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sima-app/sima-backend/internal/adapter/postgres"
	"github.com/sima-app/sima-backend/internal/adapter/postgres/base"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Table is the audit log table name.
const Table = "audit_logs"

var columns = []string{
	"id", "user_id", "action", "entity", "entity_id", "payload", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one audit entry and returns its id.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) (int64, error) {
	payload := e.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	sql, args, err := base.Builder().
		Insert(Table).
		SetMap(map[string]any{
			"user_id":   e.UserID,
			"action":    e.Action,
			"entity":    e.Entity,
			"entity_id": e.EntityID,
			"payload":   payload,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build audit insert: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, Table, 0)
	}
	return id, nil
}

// ByEntity returns the change history for one entity, newest first.
func (r *Repo) ByEntity(ctx context.Context, entity string, entityID int64, limit, offset int) ([]domain.AuditEntry, error) {
	return r.query(ctx, base.Builder().
		Select(columns...).
		From(Table).
		Where(squirrel.Eq{"entity": entity, "entity_id": entityID}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

// ByUser returns the actions performed by one user, newest first, optionally
// bounded to a time range.
func (r *Repo) ByUser(ctx context.Context, userID int64, limit, offset int, from, to *time.Time) ([]domain.AuditEntry, error) {
	q := base.Builder().
		Select(columns...).
		From(Table).
		Where(squirrel.Eq{"user_id": userID})
	if from != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *from})
	}
	if to != nil {
		q = q.Where(squirrel.LtOrEq{"created_at": *to})
	}

	return r.query(ctx, q.
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

// Recent returns the latest activity across all entities, optionally
// narrowed by entity and action labels.
func (r *Repo) Recent(ctx context.Context, limit int, entity, action string) ([]domain.AuditEntry, error) {
	q := base.Builder().
		Select(columns...).
		From(Table)
	if entity != "" {
		q = q.Where(squirrel.Eq{"entity": entity})
	}
	if action != "" {
		q = q.Where(squirrel.Eq{"action": action})
	}

	return r.query(ctx, q.
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)))
}

func (r *Repo) query(ctx context.Context, q squirrel.SelectBuilder) ([]domain.AuditEntry, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.AuditEntry])
	if err != nil {
		return nil, postgres.MapError(err, Table, 0)
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return entries, nil
}
