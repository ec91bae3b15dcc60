package domain

import "time"

// Persona is a registered person tracked by the system. DNI is the natural
// key: unique among rows whose DeletedAt is null, so a DNI can be reused
// after its original row is soft-deleted.
type Persona struct {
	ID               int64      `db:"id" json:"id"`
	Nombre           string     `db:"nombre" json:"nombre"`
	Apellido         string     `db:"apellido" json:"apellido"`
	DNI              string     `db:"dni" json:"dni"`
	FechaNacimiento  *time.Time `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Nacionalidad     *string    `db:"nacionalidad" json:"nacionalidad"`
	Direccion        *string    `db:"direccion" json:"direccion"`
	Telefono         *string    `db:"telefono" json:"telefono"`
	Email            *string    `db:"email" json:"email"`
	Observaciones    *string    `db:"observaciones" json:"observaciones"`
	FotoPrincipal    *string    `db:"foto_principal" json:"foto_principal"`
	FotosAdicionales []string   `db:"fotos_adicionales" json:"fotos_adicionales"`
	Comisaria        *string    `db:"comisaria" json:"comisaria"`
	CreatedBy        *int64     `db:"created_by" json:"created_by"`
	UpdatedBy        *int64     `db:"updated_by" json:"updated_by"`
	DeletedAt        *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// PersonaFilter holds the persona search predicates. Zero values mean
// "no filter".
type PersonaFilter struct {
	// Q is matched case-insensitively against nombre, apellido and dni.
	Q string
	// DNI filters by exact document number.
	DNI string
	// Comisaria is a contains-match on the precinct label.
	Comisaria string
}

// PersonaDetails is a persona together with its non-deleted criminal records.
type PersonaDetails struct {
	Persona
	Registros      []Registro `json:"registros_delictuales"`
	TotalRegistros int        `json:"total_registros"`
}

// PersonaStats aggregates counts over non-deleted personas.
type PersonaStats struct {
	TotalPersonas int64            `json:"total_personas"`
	PorComisaria  []ComisariaCount `json:"personas_por_comisaria"`
	Ultimos30Dias int64            `json:"registros_ultimos_30_dias"`
}

// ComisariaCount is one bucket of the per-precinct grouping.
type ComisariaCount struct {
	Comisaria *string `json:"comisaria" db:"comisaria"`
	Count     int64   `json:"count" db:"count"`
}
