package domain

import "time"

// Audit action labels. Free-form by schema, but the services only emit these.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
)

// Audit entity labels.
const (
	EntityPersona  = "persona"
	EntityRegistro = "registro"
	EntityUsuario  = "usuario"
)

// AuditEntry is one append-only record of a mutating action. Entries are
// never updated or deleted by the application.
type AuditEntry struct {
	ID        int64          `db:"id" json:"id"`
	UserID    *int64         `db:"user_id" json:"user_id"`
	Action    string         `db:"action" json:"action"`
	Entity    string         `db:"entity" json:"entity"`
	EntityID  *int64         `db:"entity_id" json:"entity_id"`
	Payload   map[string]any `db:"payload" json:"payload"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
