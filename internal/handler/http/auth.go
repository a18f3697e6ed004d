package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, status, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid login request")
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnauthorized):
			utils.WriteError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.LoginResponse{
		Status:             models.StatusSuccess,
		Username:           status.Username,
		MustChangePassword: status.MustChangePassword,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, session); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Status: models.StatusSuccess, Message: app.MsgLoggedOut}, http.StatusOK)
}

// keepalive re-issues the session cookie with a fresh expiry.
func (h *Handler) keepalive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.Keepalive(ctx, session)
	if err != nil {
		writeServiceError(w, r, err, "session keepalive failed")
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.MessageResponse{Status: models.StatusSuccess, Message: app.MsgSessionExtended}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	var change models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, session, change); err != nil {
		writeServiceError(w, r, err, "password change failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Status: models.StatusSuccess, Message: app.MsgPasswordChanged}, http.StatusOK)
}

func (h *Handler) authStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	status, err := h.services.AuthService.Status(ctx, session)
	if err != nil {
		writeServiceError(w, r, err, "auth status failed")
		return
	}

	utils.WriteJSON(w, models.AuthStatusResponse{Status: models.StatusSuccess, AuthStatus: status}, http.StatusOK)
}
