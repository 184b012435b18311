package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. Pull routes require a bearer token only when an
// AuthService is configured.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/replicache", func(r chi.Router) {
		if h.services.AuthService != nil {
			r.Use(h.auth)
		}
		r.Post("/pull", h.pull)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
