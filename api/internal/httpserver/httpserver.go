package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"smart-checker/api/internal/handle"
	"smart-checker/api/internal/web"
)

const readHeaderTimeout = 10 * time.Second

// NewRouter mounts the checker routes. Callers may add more routes before serving.
func NewRouter(h *handle.Handle, log *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(m.RequestID, m.RealIP, RequestLogger(log), m.Recoverer)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Index)
	r.Post("/", h.Index)
	r.Post("/api/score-smart", h.ScoreSMART)
	r.Get("/healthz", h.Healthz)
	r.Handle("/static/*", web.Static())

	return r
}

// New wraps handler in a server listening on addr. Only header reads are time-bound;
// evaluations run as long as the client waits.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
