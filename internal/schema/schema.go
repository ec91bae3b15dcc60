// Package schema evaluates data-driven field constraints. A Schema is a
// flat list of Field rules checked against string values; the result is
// either nil or a *domain.ValidationError carrying one entry per violation.
package schema

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/sima-app/sima-backend/internal/domain"
)

// Kind selects the extra format check applied after length and pattern rules.
type Kind int

const (
	String Kind = iota
	Email
)

// Field is one declarative constraint row.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	MinLen   int
	MaxLen   int
	Pattern  *regexp.Regexp
	// Message overrides the generated violation text when set.
	Message string
}

// Schema is an ordered set of field rules.
type Schema []Field

// Validate checks values against the schema. Absent optional fields are
// skipped; absent required fields fail. A nil return means every rule held.
func (s Schema) Validate(values map[string]*string) error {
	var errs []domain.FieldError

	for _, f := range s {
		v, ok := lookup(values, f.Name)
		if !ok {
			if f.Required {
				errs = append(errs, f.violation("es obligatorio"))
			}
			continue
		}
		if msg := f.check(v); msg != "" {
			errs = append(errs, f.violation(msg))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: errs}
}

// Optional returns a copy of the schema with every Required flag cleared,
// for validating partial updates where absent fields mean "leave unchanged".
func (s Schema) Optional() Schema {
	out := make(Schema, len(s))
	copy(out, s)
	for i := range out {
		out[i].Required = false
	}
	return out
}

func (f Field) check(v string) string {
	runes := []rune(v)
	if f.MinLen > 0 && len(runes) < f.MinLen {
		return fmt.Sprintf("debe tener al menos %d caracteres", f.MinLen)
	}
	if f.MaxLen > 0 && len(runes) > f.MaxLen {
		return fmt.Sprintf("no puede superar %d caracteres", f.MaxLen)
	}
	if f.Pattern != nil && !f.Pattern.MatchString(v) {
		return "tiene un formato inválido"
	}
	if f.Kind == Email {
		if _, err := mail.ParseAddress(v); err != nil {
			return "no es un email válido"
		}
	}
	return ""
}

func (f Field) violation(msg string) domain.FieldError {
	if f.Message != "" {
		msg = f.Message
	}
	return domain.FieldError{Field: f.Name, Message: msg}
}

// lookup treats nil pointers and empty strings as absent.
func lookup(values map[string]*string, name string) (string, bool) {
	p, ok := values[name]
	if !ok || p == nil || *p == "" {
		return "", false
	}
	return *p, true
}
