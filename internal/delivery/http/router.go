package http //nolint:revive // directory-based package name, imported with alias

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Post("/api/qr", h.HandleRenderQR)
	r.Get("/api/qr", h.HandlePayloadPreview)
	r.Post("/api/requests", h.HandleCreateRequest)
	r.Get("/api/requests/{id}", h.HandleGetRequest)
	r.Get("/api/requests/{id}/qr", h.HandleRequestQR)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
