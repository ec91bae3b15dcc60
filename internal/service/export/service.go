// Package export renders filtered catalog snapshots as CSV or XLSX files.
// Exports run against the same filters as the search endpoints, capped at a
// configured row limit to keep response sizes sane.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sima-app/sima-backend/internal/config"
	"github.com/sima-app/sima-backend/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps the query-string value to a Format. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", domain.NewValidationError("format", "debe ser csv o xlsx")
}

// File is one rendered export ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// personaSource lists personas for export, capped at limit.
type personaSource interface {
	SearchAll(ctx context.Context, f domain.PersonaFilter, limit int) ([]domain.Persona, error)
}

// registroSource lists registros for export, capped at limit.
type registroSource interface {
	SearchAll(ctx context.Context, f domain.RegistroFilter, limit int) ([]domain.Registro, error)
}

// Service implements export operations.
type Service struct {
	log       *slog.Logger
	personas  personaSource
	registros registroSource
	cfg       config.ExportConfig
}

// NewService creates a new export service instance.
func NewService(logger *slog.Logger, personas personaSource, registros registroSource, cfg config.ExportConfig) *Service {
	return &Service{
		log:       logger.With("service", "export"),
		personas:  personas,
		registros: registros,
		cfg:       cfg,
	}
}

// Personas exports the persona catalog matching the filter.
func (s *Service) Personas(ctx context.Context, f domain.PersonaFilter, format Format) (*File, error) {
	rows, err := s.personas.SearchAll(ctx, f, s.cfg.MaxRecords)
	if err != nil {
		return nil, fmt.Errorf("export.Personas: %w", err)
	}
	return renderFile(ctx, s.log, "personas", "Personas", PersonaColumns(), rows, format)
}

// Registros exports the criminal records matching the filter.
func (s *Service) Registros(ctx context.Context, f domain.RegistroFilter, format Format) (*File, error) {
	rows, err := s.registros.SearchAll(ctx, f, s.cfg.MaxRecords)
	if err != nil {
		return nil, fmt.Errorf("export.Registros: %w", err)
	}
	return renderFile(ctx, s.log, "registros", "Registros", RegistroColumns(), rows, format)
}

func renderFile[T any](ctx context.Context, log *slog.Logger, name, sheet string, cols []Column[T], rows []T, format Format) (*File, error) {
	stamp := time.Now().Format("2006-01-02")

	var file *File
	switch format {
	case FormatXLSX:
		data, err := WriteXLSX(sheet, cols, rows)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		file = &File{
			Name:        fmt.Sprintf("%s_%s.xlsx", name, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}
	default:
		file = &File{
			Name:        fmt.Sprintf("%s_%s.csv", name, stamp),
			ContentType: "text/csv; charset=utf-8",
			Data:        WriteCSV(cols, rows),
		}
	}

	log.InfoContext(ctx, "rendered export",
		slog.String("file", file.Name),
		slog.Int("rows", len(rows)))
	return file, nil
}
