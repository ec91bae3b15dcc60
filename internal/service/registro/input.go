package registro

import (
	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/internal/sanitize"
	"github.com/sima-app/sima-backend/internal/schema"
)

var createSchema = schema.Schema{
	{Name: "tipo_delito", Required: true, MinLen: 3, MaxLen: 100},
	{Name: "lugar", MaxLen: 255},
	{Name: "estado", MaxLen: 100},
	{Name: "juzgado", MaxLen: 255},
}

// CreateInput holds parameters for registro creation.
type CreateInput struct {
	PersonaID  int64   `json:"persona_id"`
	TipoDelito string  `json:"tipo_delito"`
	Lugar      *string `json:"lugar"`
	Estado     *string `json:"estado"`
	Juzgado    *string `json:"juzgado"`
	Detalle    *string `json:"detalle"`
}

// Sanitize cleans every text field in place. Detalle keeps constrained
// markup; everything else is plain text.
func (i *CreateInput) Sanitize() {
	i.TipoDelito = sanitize.Truncate(sanitize.Text(i.TipoDelito), 100)
	i.Lugar = sanitize.TextPtr(i.Lugar, 255)
	i.Estado = sanitize.TextPtr(i.Estado, 100)
	i.Juzgado = sanitize.TextPtr(i.Juzgado, 255)
	i.Detalle = sanitize.HTMLPtr(i.Detalle, 10000)
}

// Validate evaluates the field constraints. Call Sanitize first.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.PersonaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "persona_id", Message: "es obligatorio"})
	}
	if err := createSchema.Validate(map[string]*string{
		"tipo_delito": &i.TipoDelito,
		"lugar":       i.Lugar,
		"estado":      i.Estado,
		"juzgado":     i.Juzgado,
	}); err != nil {
		if ve, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) row() map[string]any {
	return map[string]any{
		"persona_id":  i.PersonaID,
		"tipo_delito": i.TipoDelito,
		"lugar":       i.Lugar,
		"estado":      i.Estado,
		"juzgado":     i.Juzgado,
		"detalle":     i.Detalle,
	}
}

// UpdateInput holds parameters for registro updates. Nil fields are left
// untouched; the persona link cannot be moved.
type UpdateInput struct {
	TipoDelito *string `json:"tipo_delito"`
	Lugar      *string `json:"lugar"`
	Estado     *string `json:"estado"`
	Juzgado    *string `json:"juzgado"`
	Detalle    *string `json:"detalle"`
}

// Sanitize cleans every provided text field in place.
func (i *UpdateInput) Sanitize() {
	if i.TipoDelito != nil {
		v := sanitize.Truncate(sanitize.Text(*i.TipoDelito), 100)
		i.TipoDelito = &v
	}
	i.Lugar = sanitize.TextPtr(i.Lugar, 255)
	i.Estado = sanitize.TextPtr(i.Estado, 100)
	i.Juzgado = sanitize.TextPtr(i.Juzgado, 255)
	i.Detalle = sanitize.HTMLPtr(i.Detalle, 10000)
}

// Validate evaluates constraints on the provided fields only.
func (i UpdateInput) Validate() error {
	if i.TipoDelito != nil && len([]rune(*i.TipoDelito)) < 3 {
		return domain.NewValidationError("tipo_delito", "debe tener al menos 3 caracteres")
	}
	return nil
}

func (i UpdateInput) row() map[string]any {
	row := map[string]any{}
	if i.TipoDelito != nil {
		row["tipo_delito"] = *i.TipoDelito
	}
	if i.Lugar != nil {
		row["lugar"] = *i.Lugar
	}
	if i.Estado != nil {
		row["estado"] = *i.Estado
	}
	if i.Juzgado != nil {
		row["juzgado"] = *i.Juzgado
	}
	if i.Detalle != nil {
		row["detalle"] = *i.Detalle
	}
	return row
}
