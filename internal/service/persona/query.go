package persona

import (
	"context"
	"fmt"

	"github.com/sima-app/sima-backend/internal/domain"
)

// GetByID returns one live persona.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	p, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.GetByID: %w", err)
	}
	return p, nil
}

// Search returns a page of live personas matching the filter, ordered by
// apellido.
func (s *Service) Search(ctx context.Context, f domain.PersonaFilter, opts domain.ListOptions) (*domain.Page[domain.Persona], error) {
	page, err := s.personas.SearchPage(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("persona.Search: %w", err)
	}
	return page, nil
}

// GetDetails returns a persona together with its live criminal records,
// newest record first.
func (s *Service) GetDetails(ctx context.Context, id int64) (*domain.PersonaDetails, error) {
	p, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.GetDetails: %w", err)
	}

	registros, err := s.registros.ListByPersona(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("persona.GetDetails registros: %w", err)
	}

	return &domain.PersonaDetails{
		Persona:        *p,
		Registros:      registros,
		TotalRegistros: len(registros),
	}, nil
}

// Statistics returns aggregate counts over live personas.
func (s *Service) Statistics(ctx context.Context) (*domain.PersonaStats, error) {
	stats, err := s.personas.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("persona.Statistics: %w", err)
	}
	return stats, nil
}
