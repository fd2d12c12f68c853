package postgres

import (
	"context"
	"os"
	"testing"

	"events-calendar/internal/adapters/storage/storagetest"
	"events-calendar/internal/domain/events"
)

// Requiere una base real: EVENTS_TEST_DSN=postgres://... go test ./...
func TestEventsRepo(t *testing.T) {
	dsn := os.Getenv("EVENTS_TEST_DSN")
	if dsn == "" {
		t.Skip("EVENTS_TEST_DSN not set")
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("schema: %v", err)
	}

	storagetest.Run(t, func(t *testing.T) events.Repository {
		if _, err := db.ExecContext(ctx, `TRUNCATE calendar_events`); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return NewEventsRepo(db)
	})
}
