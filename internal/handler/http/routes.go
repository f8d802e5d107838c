package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/health", h.health)
	router.Get("/api/version/", h.getVersion)
	router.Get("/.well-known/jwks.json", h.getJWKS)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/config/status", h.getStoreStatus)
		r.Get("/api/config/values/*", h.getValue)
	})

	router.MethodNotAllowed(notFoundForMethod)

	return router
}
