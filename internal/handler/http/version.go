package http

import (
	"net/http"
	"time"

	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()}, http.StatusOK)
}
