package registro

import (
	"context"
	"errors"
	"fmt"

	"github.com/sima-app/sima-backend/internal/domain"
)

// GetByID returns one live registro.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Registro, error) {
	r, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("registro.GetByID: %w", err)
	}
	return r, nil
}

// Search returns a page of live registros matching the filter, newest first.
func (s *Service) Search(ctx context.Context, f domain.RegistroFilter, opts domain.ListOptions) (*domain.Page[domain.Registro], error) {
	page, err := s.registros.SearchPage(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("registro.Search: %w", err)
	}
	return page, nil
}

// GetDetails returns a registro together with its persona. The persona is
// resolved regardless of soft-delete state so old records stay readable
// after the person is removed from the catalog.
func (s *Service) GetDetails(ctx context.Context, id int64) (*domain.RegistroDetails, error) {
	r, err := s.registros.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("registro.GetDetails: %w", err)
	}

	persona, err := s.personas.GetAnyByID(ctx, r.PersonaID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("registro.GetDetails persona: %w", err)
	}

	return &domain.RegistroDetails{Registro: *r, Persona: persona}, nil
}
