package http

import (
	"encoding/json"
	"net/http"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	devices, err := h.services.DeviceService.ListDevices(ctx)
	if err != nil {
		writeServiceError(w, r, err, "error listing devices")
		return
	}
	groups, err := h.services.DeviceService.ListGroups(ctx)
	if err != nil {
		writeServiceError(w, r, err, "error listing device groups")
		return
	}

	if devices == nil {
		devices = []models.Device{}
	}
	if groups == nil {
		groups = []string{}
	}
	utils.WriteJSON(w, models.DevicesResponse{Status: models.StatusSuccess, Devices: devices, Groups: groups}, http.StatusOK)
}

func (h *Handler) addDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NewDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	device, err := h.services.DeviceService.AddDevice(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "error adding device")
		return
	}

	log.Info().Str("device_id", device.ID).Str("name", device.Name).Msg("device added")
	utils.WriteJSON(w, models.DeviceResponse{Status: models.StatusSuccess, Message: app.MsgDeviceAdded, Device: device}, http.StatusCreated)
}

func (h *Handler) getDevice(w http.ResponseWriter, r *http.Request) {
	device, err := h.services.DeviceService.GetDevice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "error loading device")
		return
	}

	utils.WriteJSON(w, models.DeviceResponse{Status: models.StatusSuccess, Device: device}, http.StatusOK)
}

// updateDevice applies a partial update. Only the fields present in the
// body change; an empty api_key keeps the stored key.
func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var patch models.DevicePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	device, err := h.services.DeviceService.UpdateDevice(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "error updating device")
		return
	}

	utils.WriteJSON(w, models.DeviceResponse{Status: models.StatusSuccess, Message: app.MsgDeviceUpdated, Device: device}, http.StatusOK)
}

func (h *Handler) deleteDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.services.DeviceService.DeleteDevice(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error deleting device")
		return
	}
	if !deleted {
		utils.WriteError(w, app.MsgDeviceNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("device_id", id).Msg("device deleted")
	utils.WriteJSON(w, models.MessageResponse{Status: models.StatusSuccess, Message: app.MsgDeviceDeleted}, http.StatusOK)
}

func (h *Handler) testDevice(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.DeviceService.TestDevice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "error testing device")
		return
	}

	writeConnectivity(w, result)
}

// testConnectivity tests an address and key that are not stored.
func (h *Handler) testConnectivity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConnectivityTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.DeviceService.TestConnectivity(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "error testing connectivity")
		return
	}

	writeConnectivity(w, result)
}

// writeConnectivity answers 200 for every test outcome; the body status
// tells success from failure.
func writeConnectivity(w http.ResponseWriter, result models.ConnectivityResult) {
	status := models.StatusError
	if result.Success() {
		status = models.StatusSuccess
	}
	utils.WriteJSON(w, models.ConnectivityResponse{Status: status, ConnectivityResult: result}, http.StatusOK)
}
