package persona

import (
	"errors"
	"regexp"
	"time"

	"github.com/sima-app/sima-backend/internal/domain"
	"github.com/sima-app/sima-backend/internal/sanitize"
	"github.com/sima-app/sima-backend/internal/schema"
)

const dateLayout = "2006-01-02"

var (
	dniPattern      = regexp.MustCompile(`^\d{7,9}$`)
	telefonoPattern = regexp.MustCompile(`^[+\d][\d\s().-]{5,20}$`)
)

// updateSchema mirrors createSchema with requiredness dropped; updates only
// validate the fields the request actually carried.
var updateSchema = createSchema.Optional()

var createSchema = schema.Schema{
	{Name: "nombre", Required: true, MinLen: 2, MaxLen: 100},
	{Name: "apellido", Required: true, MinLen: 2, MaxLen: 100},
	{Name: "dni", Required: true, Pattern: dniPattern, Message: "debe tener entre 7 y 9 dígitos"},
	{Name: "nacionalidad", MaxLen: 100},
	{Name: "direccion", MaxLen: 255},
	{Name: "telefono", Pattern: telefonoPattern, Message: "tiene un formato inválido"},
	{Name: "email", Kind: schema.Email, MaxLen: 255},
	{Name: "comisaria", MaxLen: 100},
}

// CreateInput holds parameters for persona creation. Photo fields carry the
// already-stored upload paths, never raw file contents.
type CreateInput struct {
	Nombre           string   `json:"nombre"`
	Apellido         string   `json:"apellido"`
	DNI              string   `json:"dni"`
	FechaNacimiento  *string  `json:"fecha_nacimiento"`
	Nacionalidad     *string  `json:"nacionalidad"`
	Direccion        *string  `json:"direccion"`
	Telefono         *string  `json:"telefono"`
	Email            *string  `json:"email"`
	Observaciones    *string  `json:"observaciones"`
	Comisaria        *string  `json:"comisaria"`
	FotoPrincipal    *string  `json:"-"`
	FotosAdicionales []string `json:"-"`
}

// Sanitize cleans every text field in place. Observaciones keeps constrained
// markup; everything else is plain text.
func (i *CreateInput) Sanitize() {
	i.Nombre = sanitize.Truncate(sanitize.Text(i.Nombre), 100)
	i.Apellido = sanitize.Truncate(sanitize.Text(i.Apellido), 100)
	i.DNI = sanitize.Text(i.DNI)
	i.Nacionalidad = sanitize.TextPtr(i.Nacionalidad, 100)
	i.Direccion = sanitize.TextPtr(i.Direccion, 255)
	i.Telefono = sanitize.TextPtr(i.Telefono, 30)
	i.Email = sanitize.TextPtr(i.Email, 255)
	i.Observaciones = sanitize.HTMLPtr(i.Observaciones, 5000)
	i.Comisaria = sanitize.TextPtr(i.Comisaria, 100)
}

// Validate evaluates the field constraints. Call Sanitize first.
func (i CreateInput) Validate() error {
	errs := collectErrs(createSchema.Validate(map[string]*string{
		"nombre":       &i.Nombre,
		"apellido":     &i.Apellido,
		"dni":          &i.DNI,
		"nacionalidad": i.Nacionalidad,
		"direccion":    i.Direccion,
		"telefono":     i.Telefono,
		"email":        i.Email,
		"comisaria":    i.Comisaria,
	}))

	if i.FechaNacimiento != nil && *i.FechaNacimiento != "" {
		if _, err := time.Parse(dateLayout, *i.FechaNacimiento); err != nil {
			errs = append(errs, domain.FieldError{Field: "fecha_nacimiento", Message: "debe tener formato YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) row() map[string]any {
	return map[string]any{
		"nombre":            i.Nombre,
		"apellido":          i.Apellido,
		"dni":               i.DNI,
		"fecha_nacimiento":  parseDate(i.FechaNacimiento),
		"nacionalidad":      i.Nacionalidad,
		"direccion":         i.Direccion,
		"telefono":          i.Telefono,
		"email":             i.Email,
		"observaciones":     i.Observaciones,
		"comisaria":         i.Comisaria,
		"foto_principal":    i.FotoPrincipal,
		"fotos_adicionales": photosOrEmpty(i.FotosAdicionales),
	}
}

// UpdateInput holds parameters for persona updates. Nil fields are left
// untouched. Photos replace the stored set wholesale and only when the
// request actually carried files.
type UpdateInput struct {
	Nombre           *string  `json:"nombre"`
	Apellido         *string  `json:"apellido"`
	DNI              *string  `json:"dni"`
	FechaNacimiento  *string  `json:"fecha_nacimiento"`
	Nacionalidad     *string  `json:"nacionalidad"`
	Direccion        *string  `json:"direccion"`
	Telefono         *string  `json:"telefono"`
	Email            *string  `json:"email"`
	Observaciones    *string  `json:"observaciones"`
	Comisaria        *string  `json:"comisaria"`
	FotoPrincipal    *string  `json:"-"`
	FotosAdicionales []string `json:"-"`
}

// Sanitize cleans every provided text field in place.
func (i *UpdateInput) Sanitize() {
	if i.Nombre != nil {
		v := sanitize.Truncate(sanitize.Text(*i.Nombre), 100)
		i.Nombre = &v
	}
	if i.Apellido != nil {
		v := sanitize.Truncate(sanitize.Text(*i.Apellido), 100)
		i.Apellido = &v
	}
	if i.DNI != nil {
		v := sanitize.Text(*i.DNI)
		i.DNI = &v
	}
	i.Nacionalidad = sanitize.TextPtr(i.Nacionalidad, 100)
	i.Direccion = sanitize.TextPtr(i.Direccion, 255)
	i.Telefono = sanitize.TextPtr(i.Telefono, 30)
	i.Email = sanitize.TextPtr(i.Email, 255)
	i.Observaciones = sanitize.HTMLPtr(i.Observaciones, 5000)
	i.Comisaria = sanitize.TextPtr(i.Comisaria, 100)
}

// Validate evaluates constraints on the provided fields only. Absent fields
// mean "leave unchanged" and are never treated as missing.
func (i UpdateInput) Validate() error {
	errs := collectErrs(updateSchema.Validate(map[string]*string{
		"nombre":       i.Nombre,
		"apellido":     i.Apellido,
		"dni":          i.DNI,
		"nacionalidad": i.Nacionalidad,
		"direccion":    i.Direccion,
		"telefono":     i.Telefono,
		"email":        i.Email,
		"comisaria":    i.Comisaria,
	}))

	// Identity fields may be omitted but never blanked.
	for _, f := range []struct {
		name string
		v    *string
	}{{"nombre", i.Nombre}, {"apellido", i.Apellido}, {"dni", i.DNI}} {
		if f.v != nil && *f.v == "" {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "no puede quedar vacío"})
		}
	}

	if i.FechaNacimiento != nil && *i.FechaNacimiento != "" {
		if _, err := time.Parse(dateLayout, *i.FechaNacimiento); err != nil {
			errs = append(errs, domain.FieldError{Field: "fecha_nacimiento", Message: "debe tener formato YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) row() map[string]any {
	row := map[string]any{}
	setIf(row, "nombre", i.Nombre)
	setIf(row, "apellido", i.Apellido)
	setIf(row, "dni", i.DNI)
	if i.FechaNacimiento != nil {
		row["fecha_nacimiento"] = parseDate(i.FechaNacimiento)
	}
	setIf(row, "nacionalidad", i.Nacionalidad)
	setIf(row, "direccion", i.Direccion)
	setIf(row, "telefono", i.Telefono)
	setIf(row, "email", i.Email)
	setIf(row, "observaciones", i.Observaciones)
	setIf(row, "comisaria", i.Comisaria)
	if i.FotoPrincipal != nil {
		row["foto_principal"] = *i.FotoPrincipal
	}
	if i.FotosAdicionales != nil {
		row["fotos_adicionales"] = i.FotosAdicionales
	}
	return row
}

func setIf(row map[string]any, col string, v *string) {
	if v != nil {
		row[col] = *v
	}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func photosOrEmpty(fotos []string) []string {
	if fotos == nil {
		return []string{}
	}
	return fotos
}

func collectErrs(err error) []domain.FieldError {
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "body", Message: err.Error()}}
}
