package memory

import (
	"testing"

	"events-calendar/internal/adapters/storage/storagetest"
	"events-calendar/internal/domain/events"
)

func TestEventRepo(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) events.Repository {
		return NewEventRepo()
	})
}
