package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getTokenFromCookie
// ─────────────────────────────────────────────

func TestGetTokenFromCookie(t *testing.T) {
	tests := []struct {
		name      string
		cookie    *http.Cookie
		wantToken string
		wantErr   error
	}{
		{name: "no cookie", wantErr: ErrNoSessionCookie},
		{name: "other cookie only", cookie: &http.Cookie{Name: "other", Value: "x"}, wantErr: ErrNoSessionCookie},
		{name: "empty value", cookie: &http.Cookie{Name: sessionCookieName, Value: ""}, wantErr: ErrEmptySessionCookie},
		{name: "token", cookie: &http.Cookie{Name: sessionCookieName, Value: "signed.jwt.value"}, wantToken: "signed.jwt.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			token, err := getTokenFromCookie(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// TestAuth_Rejections verifies that every rejection is a uniform 401.
func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		cookie      *http.Cookie
		parseErr    error
		wantCleared bool
	}{
		{name: "missing cookie"},
		{name: "empty cookie", cookie: &http.Cookie{Name: sessionCookieName}},
		{
			name:        "invalid token",
			cookie:      &http.Cookie{Name: sessionCookieName, Value: "bad"},
			parseErr:    service.ErrUnauthorized,
			wantCleared: true,
		},
		{
			name:        "revoked session",
			cookie:      &http.Cookie{Name: sessionCookieName, Value: "revoked"},
			parseErr:    errors.Join(service.ErrUnauthorized, service.ErrSessionRevoked),
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseSessionFn: func(_ context.Context, _ string) (models.Session, error) {
					return models.Session{}, tt.parseErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := newRequest(http.MethodGet, "/api/settings", "")
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeBody[utils.ErrorResponse](t, rec)
			assert.Equal(t, models.StatusError, body.Status)
			assert.Equal(t, app.MsgAuthenticationRequired, body.Message)

			cleared := sessionCookie(rec)
			if tt.wantCleared {
				require.NotNil(t, cleared)
				assert.Empty(t, cleared.Value)
				assert.Negative(t, cleared.MaxAge)
			} else {
				assert.Nil(t, cleared)
			}
		})
	}
}

// TestAuth_ValidSession verifies that the parsed session reaches the next
// handler through the request context.
func TestAuth_ValidSession(t *testing.T) {
	var gotToken string
	auth := &mockAuthService{
		parseSessionFn: func(_ context.Context, token string) (models.Session, error) {
			gotToken = token
			return testSession, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	var fromCtx models.Session
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, ok = utils.GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := newRequest(http.MethodGet, "/api/settings", "")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "good-token", gotToken)
	require.True(t, ok)
	assert.Equal(t, testSession, fromCtx)
}
