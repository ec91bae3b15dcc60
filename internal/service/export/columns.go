package export

import (
	"strconv"
	"time"

	"github.com/sima-app/sima-backend/internal/domain"
)

// Column binds one output header to its value extractor.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04"
)

// PersonaColumns is the export layout for the persona catalog.
func PersonaColumns() []Column[domain.Persona] {
	return []Column[domain.Persona]{
		{"ID", func(p domain.Persona) string { return strconv.FormatInt(p.ID, 10) }},
		{"Nombre", func(p domain.Persona) string { return p.Nombre }},
		{"Apellido", func(p domain.Persona) string { return p.Apellido }},
		{"DNI", func(p domain.Persona) string { return p.DNI }},
		{"Fecha de Nacimiento", func(p domain.Persona) string { return fmtDate(p.FechaNacimiento) }},
		{"Nacionalidad", func(p domain.Persona) string { return deref(p.Nacionalidad) }},
		{"Dirección", func(p domain.Persona) string { return deref(p.Direccion) }},
		{"Teléfono", func(p domain.Persona) string { return deref(p.Telefono) }},
		{"Email", func(p domain.Persona) string { return deref(p.Email) }},
		{"Comisaría", func(p domain.Persona) string { return deref(p.Comisaria) }},
		{"Observaciones", func(p domain.Persona) string { return deref(p.Observaciones) }},
		{"Fecha de Registro", func(p domain.Persona) string { return p.CreatedAt.Format(datetimeLayout) }},
	}
}

// RegistroColumns is the export layout for criminal records.
func RegistroColumns() []Column[domain.Registro] {
	return []Column[domain.Registro]{
		{"ID", func(r domain.Registro) string { return strconv.FormatInt(r.ID, 10) }},
		{"ID Persona", func(r domain.Registro) string { return strconv.FormatInt(r.PersonaID, 10) }},
		{"Tipo de Delito", func(r domain.Registro) string { return r.TipoDelito }},
		{"Lugar", func(r domain.Registro) string { return deref(r.Lugar) }},
		{"Estado", func(r domain.Registro) string { return deref(r.Estado) }},
		{"Juzgado", func(r domain.Registro) string { return deref(r.Juzgado) }},
		{"Detalle", func(r domain.Registro) string { return deref(r.Detalle) }},
		{"Fecha de Registro", func(r domain.Registro) string { return r.CreatedAt.Format(datetimeLayout) }},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
