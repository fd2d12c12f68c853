package router

import (
	"net/http"

	mem "events-calendar/internal/adapters/storage/memory"
	"events-calendar/internal/domain/events"
	"events-calendar/internal/middleware"
	"events-calendar/internal/platform/logger"

	_ "events-calendar/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Repo nil = in-memory.
	Repo events.Repository

	Logger logger.Logger // nil = sin logs

	// AllowedOrigins para CORS. Vacío = "*".
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	metrics := middleware.NewMetrics()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewEventRepo()
	}

	events.RegisterRoutes(r, events.NewService(repo))

	return r
}
