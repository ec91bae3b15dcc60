package user

import (
	"regexp"

	"github.com/sima-app/sima-backend/internal/domain"
)

var usuarioPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)

// CreateInput holds parameters for account creation. The password is not
// part of the input: a temporary one is generated and returned once.
type CreateInput struct {
	Usuario  string      `json:"usuario"`
	Nombre   string      `json:"nombre"`
	Apellido string      `json:"apellido"`
	Rol      domain.Role `json:"rol"`
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !usuarioPattern.MatchString(i.Usuario) {
		errs = append(errs, domain.FieldError{Field: "usuario", Message: "debe tener entre 3 y 50 caracteres alfanuméricos"})
	}
	if len(i.Nombre) < 2 || len(i.Nombre) > 100 {
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "debe tener entre 2 y 100 caracteres"})
	}
	if len(i.Apellido) < 2 || len(i.Apellido) > 100 {
		errs = append(errs, domain.FieldError{Field: "apellido", Message: "debe tener entre 2 y 100 caracteres"})
	}
	if !i.Rol.Valid() {
		errs = append(errs, domain.FieldError{Field: "rol", Message: "rol desconocido"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for account updates. Nil fields are left
// untouched; the username and password cannot be changed here.
type UpdateInput struct {
	Nombre   *string      `json:"nombre"`
	Apellido *string      `json:"apellido"`
	Rol      *domain.Role `json:"rol"`
	Activo   *bool        `json:"activo"`
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Nombre != nil && (len(*i.Nombre) < 2 || len(*i.Nombre) > 100) {
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "debe tener entre 2 y 100 caracteres"})
	}
	if i.Apellido != nil && (len(*i.Apellido) < 2 || len(*i.Apellido) > 100) {
		errs = append(errs, domain.FieldError{Field: "apellido", Message: "debe tener entre 2 y 100 caracteres"})
	}
	if i.Rol != nil && !i.Rol.Valid() {
		errs = append(errs, domain.FieldError{Field: "rol", Message: "rol desconocido"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) empty() bool {
	return i.Nombre == nil && i.Apellido == nil && i.Rol == nil && i.Activo == nil
}
