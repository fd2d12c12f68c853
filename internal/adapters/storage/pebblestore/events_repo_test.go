package pebblestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"events-calendar/internal/adapters/storage/storagetest"
	"events-calendar/internal/domain/events"
)

func TestEventsRepo(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) events.Repository {
		repo, err := Open(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	})
}

func TestEventsRepo_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, events.Event{ID: "a1", Date: "2024-03-01", Title: "T", Text: "X"}))
	require.NoError(t, repo.Close())

	repo, err = Open(dir)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.GetByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Equal(t, "a1", got.ID)
	require.Equal(t, "X", got.Text)

	// el orden de inserción sigue después de reabrir
	require.NoError(t, repo.Create(ctx, events.Event{ID: "0-first-by-key", Date: "2024-03-02", Title: "T", Text: "Y"}))
	all, err := repo.List(ctx, events.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "a1", all[0].ID)
	require.Equal(t, "0-first-by-key", all[1].ID)
}
