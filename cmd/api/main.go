package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "events-calendar/internal/adapters/storage/memory"
	"events-calendar/internal/adapters/storage/pebblestore"
	pg "events-calendar/internal/adapters/storage/postgres"
	"events-calendar/internal/config"
	"events-calendar/internal/domain/events"
	"events-calendar/internal/export"
	"events-calendar/internal/platform/logger"
	"events-calendar/internal/router"
)

// @title Events Calendar API
// @version 1.0
// @description Calendario con un evento por día. Cuerpos text/plain "id|date|title|text".
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", os.Getenv("EVENTS_CONFIG"), "ruta al archivo YAML de configuración")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closer, err := openRepo(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Export.ICSPath != "" {
		job := &export.Job{
			Events:  events.NewService(repo),
			Path:    cfg.Export.ICSPath,
			Timeout: 30 * time.Second,
			Log:     log.With(map[string]any{"component": "export"}),
		}
		sched, err := export.Schedule(cfg.Export.Schedule, job)
		if err != nil {
			return err
		}
		defer func() { <-sched.Stop().Done() }()
		log.Info("ics export scheduled", map[string]any{"path": job.Path, "schedule": cfg.Export.Schedule})
	}

	r := router.NewRouter(router.Options{
		Repo:           repo,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Listen, "storage": cfg.Storage.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openRepo elige el backend según la configuración. El closer libera la
// conexión o el directorio de datos.
func openRepo(ctx context.Context, st config.Storage) (events.Repository, io.Closer, error) {
	switch st.Backend {
	case config.BackendPostgres:
		db, err := pg.Open(st.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewEventsRepo(db), db, nil
	case config.BackendPebble:
		repo, err := pebblestore.Open(st.PebbleDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	default:
		return mem.NewEventRepo(), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
