package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// status endpoint requires no credentials
	router.Get("/status", h.status)

	router.Post("/upload", h.upload)
	router.Get("/download/{slug}", h.download)
	router.Post("/check-slug", h.checkSlug)
	router.Post("/change-password", h.changePassword)

	return router
}
