package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"events-calendar/internal/domain/events"
)

type eventRepo struct {
	mu     sync.RWMutex
	byID   map[string]stored
	byDate map[string]string // date -> id
	seq    uint64
}

// stored guarda el orden de inserción para que List sea estable.
type stored struct {
	events.Event
	seq uint64
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID:   make(map[string]stored),
		byDate: make(map[string]string),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}
	if _, taken := r.byDate[e.Date]; taken {
		return events.ErrDateTaken
	}

	r.seq++
	r.byID[e.ID] = stored{Event: e, seq: r.seq}
	r.byDate[e.Date] = e.ID
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return s.Event, nil
}

func (r *eventRepo) GetByDate(ctx context.Context, date string) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byDate[date]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return r.byID[id].Event, nil
}

func (r *eventRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]stored, 0, len(r.byID))
	for _, s := range r.byID {
		if !filter.Matches(s.Event) {
			continue
		}
		matched = append(matched, s)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].seq < matched[j].seq
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	out := make([]events.Event, 0, len(matched))
	for _, s := range matched {
		out = append(out, s.Event)
	}
	return out, nil
}

func (r *eventRepo) Update(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[e.ID]
	if !ok {
		return events.ErrNotFound
	}
	if owner, taken := r.byDate[e.Date]; taken && owner != e.ID {
		return events.ErrDateTaken
	}

	delete(r.byDate, old.Date)
	r.byDate[e.Date] = e.ID
	r.byID[e.ID] = stored{Event: e, seq: old.seq}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return events.ErrNotFound
	}
	delete(r.byDate, s.Date)
	delete(r.byID, id)
	return nil
}
