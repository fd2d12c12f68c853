// Package storagetest contiene la batería común que debe pasar cada
// implementación de events.Repository.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"events-calendar/internal/domain/events"
)

// Run ejecuta la batería contra repos nuevos creados por newRepo.
func Run(t *testing.T, newRepo func(t *testing.T) events.Repository) {
	t.Helper()

	t.Run("CreateAndGet", func(t *testing.T) { testCreateAndGet(t, newRepo(t)) })
	t.Run("DateIsUnique", func(t *testing.T) { testDateIsUnique(t, newRepo(t)) })
	t.Run("ListOrderAndFilter", func(t *testing.T) { testListOrderAndFilter(t, newRepo(t)) })
	t.Run("ListOrderWithEqualTimestamps", func(t *testing.T) { testListOrderWithEqualTimestamps(t, newRepo(t)) })
	t.Run("UpdateMovesDate", func(t *testing.T) { testUpdateMovesDate(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
}

var base = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func sample(id, date string, n int) events.Event {
	at := base.Add(time.Duration(n) * time.Minute)
	return events.Event{
		ID:        id,
		Date:      date,
		Title:     "title " + id,
		Text:      "текст " + id,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func testCreateAndGet(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	e := sample("11111111-1111-1111-1111-111111111111", "2024-03-01", 0)

	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	assertSame(t, e, got)

	got, err = repo.GetByDate(ctx, e.Date)
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	assertSame(t, e, got)

	if _, err := repo.GetByID(ctx, "22222222-2222-2222-2222-222222222222"); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("GetByID missing: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByDate(ctx, "2030-01-01"); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("GetByDate missing: expected ErrNotFound, got %v", err)
	}
}

func testDateIsUnique(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	if err := repo.Create(ctx, sample("11111111-1111-1111-1111-111111111111", "2024-03-01", 0)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, sample("22222222-2222-2222-2222-222222222222", "2024-03-01", 1))
	if !errors.Is(err, events.ErrDateTaken) {
		t.Fatalf("expected ErrDateTaken, got %v", err)
	}
}

func testListOrderAndFilter(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	in := []events.Event{
		sample("33333333-3333-3333-3333-333333333333", "2024-03-20", 0),
		sample("11111111-1111-1111-1111-111111111111", "2024-04-01", 1),
		sample("22222222-2222-2222-2222-222222222222", "2024-03-02", 2),
	}
	for _, e := range in {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create %s: %v", e.ID, err)
		}
	}

	all, err := repo.List(ctx, events.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	for i := range in {
		if all[i].ID != in[i].ID {
			t.Fatalf("position %d: expected %s, got %s", i, in[i].ID, all[i].ID)
		}
	}

	march, err := repo.List(ctx, events.ListFilter{Month: "2024-03"})
	if err != nil {
		t.Fatalf("List month: %v", err)
	}
	if len(march) != 2 || march[0].ID != in[0].ID || march[1].ID != in[2].ID {
		t.Fatalf("unexpected march events %#v", march)
	}

	limited, err := repo.List(ctx, events.ListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != in[0].ID {
		t.Fatalf("unexpected limited list %#v", limited)
	}

	empty, err := repo.List(ctx, events.ListFilter{Month: "1999-01"})
	if err != nil {
		t.Fatalf("List empty month: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

// Mismo created_at e IDs en orden inverso: sólo el orden de inserción decide.
func testListOrderWithEqualTimestamps(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	in := []events.Event{
		sample("cccccccc-cccc-cccc-cccc-cccccccccccc", "2024-05-01", 0),
		sample("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb", "2024-05-02", 0),
		sample("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "2024-05-03", 0),
	}
	for _, e := range in {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create %s: %v", e.ID, err)
		}
	}

	// una edición no cambia la posición
	edited := in[0]
	edited.Title = "edited"
	if err := repo.Update(ctx, edited); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.List(ctx, events.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d events, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Fatalf("position %d: expected %s, got %s", i, in[i].ID, got[i].ID)
		}
	}
}

func testUpdateMovesDate(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	a := sample("11111111-1111-1111-1111-111111111111", "2024-03-01", 0)
	b := sample("22222222-2222-2222-2222-222222222222", "2024-03-02", 1)
	for _, e := range []events.Event{a, b} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create %s: %v", e.ID, err)
		}
	}

	moved := a
	moved.Date = "2024-03-05"
	moved.Title = "moved"
	moved.UpdatedAt = base.Add(time.Hour)
	if err := repo.Update(ctx, moved); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := repo.GetByDate(ctx, "2024-03-01"); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("old date should be free, got %v", err)
	}
	got, err := repo.GetByDate(ctx, "2024-03-05")
	if err != nil {
		t.Fatalf("GetByDate new date: %v", err)
	}
	assertSame(t, moved, got)

	clash := moved
	clash.Date = b.Date
	if err := repo.Update(ctx, clash); !errors.Is(err, events.ErrDateTaken) {
		t.Fatalf("expected ErrDateTaken, got %v", err)
	}

	ghost := sample("99999999-9999-9999-9999-999999999999", "2024-06-01", 5)
	if err := repo.Update(ctx, ghost); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testDelete(t *testing.T, repo events.Repository) {
	ctx := context.Background()
	e := sample("11111111-1111-1111-1111-111111111111", "2024-03-01", 0)
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, e.ID); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("second Delete: expected ErrNotFound, got %v", err)
	}

	// la fecha queda libre
	again := sample("22222222-2222-2222-2222-222222222222", e.Date, 1)
	if err := repo.Create(ctx, again); err != nil {
		t.Fatalf("Create on freed date: %v", err)
	}
}

func assertSame(t *testing.T, want, got events.Event) {
	t.Helper()
	if got.ID != want.ID || got.Date != want.Date || got.Title != want.Title || got.Text != want.Text {
		t.Fatalf("event mismatch:\nwant %#v\ngot  %#v", want, got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("timestamps mismatch: want %v/%v got %v/%v", want.CreatedAt, want.UpdatedAt, got.CreatedAt, got.UpdatedAt)
	}
}
