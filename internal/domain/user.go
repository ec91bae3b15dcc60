package domain

import "time"

// Role is the access level of a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUsuario Role = "usuario"
)

func (r Role) String() string { return string(r) }

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUsuario
}

// User is an application account. PasswordHash and TokenVersion are
// persistence-only fields and must never appear in response projections.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Usuario      string    `db:"usuario" json:"usuario"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Nombre       string    `db:"nombre" json:"nombre"`
	Apellido     string    `db:"apellido" json:"apellido"`
	Rol          Role      `db:"rol" json:"rol"`
	Activo       bool      `db:"activo" json:"activo"`
	TokenVersion int       `db:"token_version" json:"-"`
	CreatedBy    *int64    `db:"created_by" json:"created_by"`
	UpdatedBy    *int64    `db:"updated_by" json:"updated_by"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the snapshot of a user embedded in signed tokens and attached
// to the request context by the auth middleware.
type Identity struct {
	ID           int64
	Usuario      string
	Rol          Role
	Nombre       string
	Apellido     string
	TokenVersion int
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Rol == RoleAdmin }

// IdentityOf builds the token snapshot for a user row.
func IdentityOf(u *User) Identity {
	return Identity{
		ID:           u.ID,
		Usuario:      u.Usuario,
		Rol:          u.Rol,
		Nombre:       u.Nombre,
		Apellido:     u.Apellido,
		TokenVersion: u.TokenVersion,
	}
}
