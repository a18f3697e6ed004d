package http

import (
	"errors"
	"net/http"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrWrongPassword:       http.StatusBadRequest,
	service.ErrNoDeviceConfigured:  http.StatusServiceUnavailable,
	service.ErrFirewallQueryFailed: http.StatusBadGateway,

	store.ErrDeviceNotFound:  http.StatusNotFound,
	store.ErrCorruptDocument: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrUnauthorized:        app.MsgAuthenticationRequired,
	service.ErrWrongPassword:       app.MsgInvalidCurrentPassword,
	service.ErrNoDeviceConfigured:  app.MsgNoDeviceConfigured,
	service.ErrFirewallQueryFailed: app.MsgFirewallQueryFailed,

	store.ErrDeviceNotFound: app.MsgDeviceNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Validation
// failures carry their own detail; unknown errors never leak it.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Msg(msg)
	}

	utils.WriteError(w, messageFromError(err), status)
}
