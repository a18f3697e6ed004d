package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/require"
)

// testSession is the session every authenticated test request carries.
var testSession = models.Session{ID: "session-1", Username: "admin"}

// newTestHandler builds a Handler over svcs with a nop logger.
func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// newRequest builds a request with body and a nop logger in its context.
func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	return injectNopLogger(req)
}

// newSessionRequest builds a request as the auth middleware would pass it on.
func newSessionRequest(method, path, body string) *http.Request {
	req := newRequest(method, path, body)
	return req.WithContext(utils.ContextWithSession(req.Context(), testSession))
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// decodeBody unmarshals the recorded JSON body into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// toJSON serialises v into a request body.
func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// sessionCookie returns the session cookie set on rec, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
