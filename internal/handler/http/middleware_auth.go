package http

import (
	"net/http"
	"time"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "panfm_session"

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the [sessionCookieName] cookie, validates the token via
// [service.AuthService.ParseSession] and, on success, stores the session in
// the request context with [utils.ContextWithSession] before delegating to
// the next handler.
//
// Every rejection is answered with HTTP 401 and the same body, whatever the
// reason (missing cookie, bad signature, expired or revoked session).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromCookie(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without session")
			utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, token)
		if err != nil {
			log.Warn().Err(err).Msg("session rejected")
			h.clearSessionCookie(w)
			utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(ctx, session)))
	})
}

// getTokenFromCookie extracts the session token from the request.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] if the cookie is absent.
//   - [ErrEmptySessionCookie] if the cookie holds an empty value.
func getTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}
	return cookie.Value, nil
}

// setSessionCookie writes token as an HttpOnly cookie. A token without an
// expiry yields a browser-session cookie.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.SessionToken) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
