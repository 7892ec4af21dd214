package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"trackify/internal/adapter/http/middleware"
	"trackify/internal/infrastructure/logger"
	"trackify/internal/infrastructure/metrics"
	"trackify/internal/service"
)

// Server assembles the API router. It implements http.Handler.
type Server struct {
	router chi.Router
}

// NewServer wires the handlers into a chi router with the standard
// middleware chain. eventBus and met may be nil.
func NewServer(handlers *Handlers, eventBus *service.EventBus, met *metrics.Metrics, log *slog.Logger) *Server {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(logger.RequestLogger(log))
	if met != nil {
		r.Use(metrics.RequestMiddleware(met))
	}
	r.Use(middleware.SecurityHeaders)

	r.Post("/upload", handlers.Upload())
	r.Post("/process-url", handlers.ProcessURL())
	r.Get("/status/{jobID}", handlers.Status())
	r.Post("/create-playlist", handlers.CreatePlaylist())
	r.Get("/healthz", handlers.Healthz())

	if eventBus != nil {
		sse := NewSSEHandler(eventBus, handlers.jobs)
		r.Get("/events/{jobID}", sse.Events())
	}

	if met != nil {
		r.Method(http.MethodGet, "/metrics", met.Handler())
	}

	return &Server{router: r}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
