package http

import (
	"net/http"

	"github.com/csmblade/PANfm/internal/utils"
)

func (h *Handler) throughput(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.DashboardService.Throughput(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "throughput poll failed")
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) policies(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.DashboardService.Policies(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "policy poll failed")
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) license(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.DashboardService.License(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "license poll failed")
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}
