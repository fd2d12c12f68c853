package events

import "context"

// Repository guarda eventos. Las implementaciones deben devolver ErrNotFound
// cuando el ID no existe y ErrDateTaken si la fecha ya está usada por otro evento.
type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	GetByDate(ctx context.Context, date string) (Event, error)
	List(ctx context.Context, filter ListFilter) ([]Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}

// ListFilter filtra List. Los campos vacíos no filtran.
type ListFilter struct {
	Month string // YYYY-MM, prefijo de la fecha
	Limit int    // <= 0 sin límite
}

// Matches indica si el evento pasa el filtro por mes.
func (f ListFilter) Matches(e Event) bool {
	if f.Month == "" {
		return true
	}
	return len(e.Date) >= len(f.Month) && e.Date[:len(f.Month)] == f.Month
}
