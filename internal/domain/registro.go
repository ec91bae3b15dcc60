package domain

import "time"

// Registro is one criminal-record entry linked to a persona. The persona
// reference is enforced by the storage layer; soft-deleting the persona
// leaves its registros live, hard-deleting cascades.
type Registro struct {
	ID         int64      `db:"id" json:"id"`
	PersonaID  int64      `db:"persona_id" json:"persona_id"`
	TipoDelito string     `db:"tipo_delito" json:"tipo_delito"`
	Lugar      *string    `db:"lugar" json:"lugar"`
	Estado     *string    `db:"estado" json:"estado"`
	Juzgado    *string    `db:"juzgado" json:"juzgado"`
	Detalle    *string    `db:"detalle" json:"detalle"`
	CreatedBy  *int64     `db:"created_by" json:"created_by"`
	UpdatedBy  *int64     `db:"updated_by" json:"updated_by"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// RegistroFilter holds the registro search predicates.
type RegistroFilter struct {
	// PersonaID filters by exact persona reference when non-nil.
	PersonaID *int64
	// Q is matched case-insensitively against tipo_delito, lugar, estado
	// and juzgado.
	Q string
}

// RegistroDetails is a registro with its linked persona row. The persona is
// included even when soft-deleted so history stays inspectable.
type RegistroDetails struct {
	Registro
	Persona *Persona `json:"persona"`
}
