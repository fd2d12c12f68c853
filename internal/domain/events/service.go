package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Event, error) {
	if err := ValidateInput(in); err != nil {
		return Event{}, err
	}

	if existing, err := s.repo.GetByDate(ctx, in.Date); err == nil {
		return Event{}, fmt.Errorf("%w: %s (id %s)", ErrDateTaken, in.Date, existing.ID)
	} else if !errors.Is(err, ErrNotFound) {
		return Event{}, err
	}

	now := s.now()
	e := Event{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Title:     in.Title,
		Text:      in.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	if filter.Month != "" {
		if _, err := time.Parse("2006-01", filter.Month); err != nil {
			return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidDate)
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByDate(ctx context.Context, date string) (Event, error) {
	if err := ValidateDate(date); err != nil {
		return Event{}, err
	}
	return s.repo.GetByDate(ctx, date)
}

// Update valida la entrada antes de buscar el evento, así un cuerpo inválido es
// siempre error de validación. Mantener la propia fecha está permitido;
// mover el evento a una fecha ocupada por otro no.
func (s *Service) Update(ctx context.Context, id string, in Input) (Event, error) {
	if err := ValidateInput(in); err != nil {
		return Event{}, err
	}
	old, err := s.Get(ctx, id)
	if err != nil {
		return Event{}, err
	}

	if in.Date != old.Date {
		other, err := s.repo.GetByDate(ctx, in.Date)
		switch {
		case err == nil && other.ID != old.ID:
			return Event{}, fmt.Errorf("%w: %s (id %s)", ErrDateTaken, in.Date, other.ID)
		case err != nil && !errors.Is(err, ErrNotFound):
			return Event{}, err
		}
	}

	e := Event{
		ID:        old.ID,
		Date:      in.Date,
		Title:     in.Title,
		Text:      in.Text,
		CreatedAt: old.CreatedAt,
		UpdatedAt: s.now(),
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Delete es idempotente: borrar un ID inexistente no es error.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// IsDateAvailable indica si date está libre. excludeID permite que la fecha
// esté ocupada por ese mismo evento (caso edición).
func (s *Service) IsDateAvailable(ctx context.Context, date, excludeID string) (bool, error) {
	if ValidateDate(date) != nil {
		return false, nil
	}
	e, err := s.repo.GetByDate(ctx, date)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return excludeID != "" && e.ID == excludeID, nil
}
