// Package pebblestore guarda eventos en un KV embebido (cockroachdb/pebble).
//
// Layout de claves:
//
//	event/<id>   -> documento msgpack
//	date/<date>  -> id
package pebblestore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/ugorji/go/codec"

	"events-calendar/internal/domain/events"
)

const (
	eventPrefix = "event/"
	datePrefix  = "date/"
)

var mh codec.MsgpackHandle

type document struct {
	ID        string `codec:"id"`
	Date      string `codec:"date"`
	Title     string `codec:"title"`
	Text      string `codec:"text"`
	CreatedAt int64  `codec:"created_at"` // unix nanos
	UpdatedAt int64  `codec:"updated_at"`

	// Seq es el orden de inserción; las claves van por ID, no por creación.
	Seq uint64 `codec:"seq"`
}

type EventsRepo struct {
	// mu serializa las escrituras: la unicidad por fecha se chequea y se
	// escribe dentro del mismo lock.
	mu  sync.Mutex
	db  *pebble.DB
	seq uint64
}

// Open abre (o crea) la base en dir.
func Open(dir string) (*EventsRepo, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble: open %s: %w", dir, err)
	}
	r := &EventsRepo{db: db}
	if err := r.loadSeq(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

// loadSeq retoma el contador desde el mayor Seq guardado.
func (r *EventsRepo) loadSeq() error {
	return r.scan(func(doc document) {
		if doc.Seq > r.seq {
			r.seq = doc.Seq
		}
	})
}

func (r *EventsRepo) Close() error {
	return r.db.Close()
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, err := r.get(eventKey(e.ID)); err == nil {
		return errors.New("event already exists")
	} else if !errors.Is(err, pebble.ErrNotFound) {
		return err
	}
	if _, err := r.get(dateKey(e.Date)); err == nil {
		return events.ErrDateTaken
	} else if !errors.Is(err, pebble.ErrNotFound) {
		return err
	}

	r.seq++
	return r.write(toDocument(e, r.seq), "")
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	raw, err := r.get(eventKey(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return events.Event{}, events.ErrNotFound
	}
	if err != nil {
		return events.Event{}, err
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return events.Event{}, err
	}
	return doc.event(), nil
}

func (r *EventsRepo) GetByDate(ctx context.Context, date string) (events.Event, error) {
	id, err := r.get(dateKey(date))
	if errors.Is(err, pebble.ErrNotFound) {
		return events.Event{}, events.ErrNotFound
	}
	if err != nil {
		return events.Event{}, err
	}
	return r.GetByID(ctx, string(id))
}

func (r *EventsRepo) List(ctx context.Context, filter events.ListFilter) ([]events.Event, error) {
	docs := make([]document, 0)
	err := r.scan(func(doc document) {
		if filter.Matches(doc.event()) {
			docs = append(docs, doc)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Seq == docs[j].Seq {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].Seq < docs[j].Seq
	})

	if filter.Limit > 0 && len(docs) > filter.Limit {
		docs = docs[:filter.Limit]
	}

	out := make([]events.Event, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.event())
	}
	return out, nil
}

// scan recorre todos los documentos event/*.
func (r *EventsRepo) scan(fn func(document)) error {
	iter, err := r.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(eventPrefix),
		UpperBound: prefixEnd(eventPrefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		doc, err := decodeDocument(iter.Value())
		if err != nil {
			return err
		}
		fn(doc)
	}
	return iter.Error()
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.get(eventKey(e.ID))
	if errors.Is(err, pebble.ErrNotFound) {
		return events.ErrNotFound
	}
	if err != nil {
		return err
	}
	old, err := decodeDocument(raw)
	if err != nil {
		return err
	}
	if owner, err := r.get(dateKey(e.Date)); err == nil && string(owner) != e.ID {
		return events.ErrDateTaken
	} else if err != nil && !errors.Is(err, pebble.ErrNotFound) {
		return err
	}

	stale := ""
	if old.Date != e.Date {
		stale = old.Date
	}
	return r.write(toDocument(e, old.Seq), stale)
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	b := r.db.NewBatch()
	defer b.Close()
	if err := b.Delete(eventKey(id), nil); err != nil {
		return err
	}
	if err := b.Delete(dateKey(e.Date), nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

// write guarda el documento y su índice por fecha en un batch atómico.
// Si staleDate no es vacío, borra esa entrada del índice.
func (r *EventsRepo) write(doc document, staleDate string) error {
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	b := r.db.NewBatch()
	defer b.Close()

	if err := b.Set(eventKey(doc.ID), raw, nil); err != nil {
		return err
	}
	if err := b.Set(dateKey(doc.Date), []byte(doc.ID), nil); err != nil {
		return err
	}
	if staleDate != "" {
		if err := b.Delete(dateKey(staleDate), nil); err != nil {
			return err
		}
	}
	return b.Commit(pebble.Sync)
}

// get copia el valor: el slice de pebble sólo vale hasta cerrar el closer.
func (r *EventsRepo) get(key []byte) ([]byte, error) {
	v, closer, err := r.db.Get(key)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func eventKey(id string) []byte  { return []byte(eventPrefix + id) }
func dateKey(date string) []byte { return []byte(datePrefix + date) }

func prefixEnd(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++
	return end
}

func toDocument(e events.Event, seq uint64) document {
	return document{
		ID:        e.ID,
		Date:      e.Date,
		Title:     e.Title,
		Text:      e.Text,
		CreatedAt: e.CreatedAt.UnixNano(),
		UpdatedAt: e.UpdatedAt.UnixNano(),
		Seq:       seq,
	}
}

func (d document) event() events.Event {
	return events.Event{
		ID:        d.ID,
		Date:      d.Date,
		Title:     d.Title,
		Text:      d.Text,
		CreatedAt: time.Unix(0, d.CreatedAt),
		UpdatedAt: time.Unix(0, d.UpdatedAt),
	}
}

func encodeDocument(doc document) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, &mh).Encode(doc); err != nil {
		return nil, fmt.Errorf("pebble: encode event %s: %w", doc.ID, err)
	}
	return out, nil
}

func decodeDocument(raw []byte) (document, error) {
	var doc document
	if err := codec.NewDecoderBytes(raw, &mh).Decode(&doc); err != nil {
		return document{}, fmt.Errorf("pebble: decode event: %w", err)
	}
	return doc, nil
}
