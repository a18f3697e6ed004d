package http

import (
	"net/http"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", h.login)
			r.Get("/health", h.health)
			r.Get("/version", h.getServerVersion)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Post("/auth/keepalive", h.keepalive)
			r.Post("/auth/change-password", h.changePassword)
			r.Get("/auth/status", h.authStatus)

			r.Get("/settings", h.getSettings)
			r.Post("/settings", h.saveSettings)

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", h.listDevices)
				r.Post("/", h.addDevice)
				r.Post("/test-connection", h.testConnectivity)
				r.Get("/{id}", h.getDevice)
				r.Put("/{id}", h.updateDevice)
				r.Delete("/{id}", h.deleteDevice)
				r.Post("/{id}/test", h.testDevice)
			})

			r.Get("/throughput", h.throughput)
			r.Get("/policies", h.policies)
			r.Get("/license", h.license)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
