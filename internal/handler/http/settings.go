package http

import (
	"encoding/json"
	"net/http"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error loading settings")
		return
	}

	utils.WriteJSON(w, models.SettingsResponse{Status: models.StatusSuccess, Settings: settings}, http.StatusOK)
}

// saveSettings overwrites the whole settings record. Fields missing from
// the body take their default values; out of range values are clamped.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	settings := models.DefaultSettings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.SettingsService.SaveSettings(r.Context(), settings)
	if err != nil {
		writeServiceError(w, r, err, "error saving settings")
		return
	}

	utils.WriteJSON(w, models.SettingsResponse{
		Status:   models.StatusSuccess,
		Message:  app.MsgSettingsSaved,
		Settings: saved,
	}, http.StatusOK)
}
