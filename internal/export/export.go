// Package export escribe el calendario completo como archivo .ics, a mano o
// según un horario cron.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"events-calendar/internal/domain/events"
	"events-calendar/internal/platform/logger"
)

// Lister es lo único que Job necesita del servicio.
type Lister interface {
	List(ctx context.Context, filter events.ListFilter) ([]events.Event, error)
}

type Job struct {
	Events  Lister
	Path    string
	Timeout time.Duration
	Log     logger.Logger
}

// Run escribe el archivo. La escritura es atómica: temp + rename en el mismo dir.
func (j *Job) Run(ctx context.Context) (int, error) {
	if j.Path == "" {
		return 0, fmt.Errorf("export: empty path")
	}
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	items, err := j.Events.List(ctx, events.ListFilter{})
	if err != nil {
		return 0, fmt.Errorf("export: list events: %w", err)
	}
	body, err := events.RenderICS(items)
	if err != nil {
		return 0, fmt.Errorf("export: render: %w", err)
	}
	if err := writeAtomic(j.Path, []byte(body)); err != nil {
		return 0, err
	}
	return len(items), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("export: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export: close: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export: chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export: rename: %w", err)
	}
	return nil
}

// Schedule registra job con un horario cron estándar (5 campos) y arranca el
// scheduler. El llamador debe hacer Stop.
func Schedule(spec string, job *Job) (*cron.Cron, error) {
	log := job.Log
	if log == nil {
		log = logger.Nop()
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		start := time.Now()
		n, err := job.Run(context.Background())
		if err != nil {
			log.Error("ics export failed", map[string]any{"path": job.Path, "err": err})
			return
		}
		log.Info("ics export written", map[string]any{
			"path":        job.Path,
			"events":      n,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("export: invalid schedule %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}
