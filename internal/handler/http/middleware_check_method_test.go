// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newMethodTestRouter builds a router with a handful of routes and
// CheckHTTPMethod installed as its MethodNotAllowed handler.
func newMethodTestRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Get("/health", ok)
		r.Route("/devices", func(r chi.Router) {
			r.Get("/", ok)
			r.Post("/", ok)
			r.Get("/{id}", ok)
			r.Put("/{id}", ok)
			r.Delete("/{id}", ok)
		})
	})

	admin := chi.NewRouter()
	admin.Post("/reset", ok)
	router.Mount("/admin", admin)

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantAllow   string
		wantMessage string
	}{
		{
			name:        "static route",
			method:      http.MethodPost,
			path:        "/api/health",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET",
			wantMessage: app.MsgMethodNotAllowed,
		},
		{
			name:        "parameterised route",
			method:      http.MethodPost,
			path:        "/api/devices/dev-1",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET, PUT, DELETE",
			wantMessage: app.MsgMethodNotAllowed,
		},
		{
			name:        "collection route",
			method:      http.MethodPatch,
			path:        "/api/devices/",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET, POST",
			wantMessage: app.MsgMethodNotAllowed,
		},
		{
			name:        "collection route without trailing slash",
			method:      http.MethodDelete,
			path:        "/api/devices",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "GET, POST",
			wantMessage: app.MsgMethodNotAllowed,
		},
		{
			name:        "mounted subrouter",
			method:      http.MethodGet,
			path:        "/admin/reset",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllow:   "POST",
			wantMessage: app.MsgMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			newMethodTestRouter().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.Equal(t, tt.wantMessage, decodeBody[utils.ErrorResponse](t, rec).Message)
		})
	}
}

// TestCheckHTTPMethod_NoMatch verifies the 404 answer when the handler is
// invoked for a path no method serves.
func TestCheckHTTPMethod_NoMatch(t *testing.T) {
	handle := CheckHTTPMethod(newMethodTestRouter())
	rec := httptest.NewRecorder()

	handle(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Allow"))
	assert.Equal(t, app.MsgNotFound, decodeBody[utils.ErrorResponse](t, rec).Message)
}

// ─────────────────────────────────────────────
// Pattern matching
// ─────────────────────────────────────────────

// TestPatternMatches verifies segment matching of walked route patterns
// against request paths.
func TestPatternMatches(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{pattern: "/api/health", path: "/api/health", want: true},
		{pattern: "/api/health", path: "/api/health/", want: true},
		{pattern: "/api/devices/", path: "/api/devices", want: true},
		{pattern: "/api/devices/{id}", path: "/api/devices/dev-1", want: true},
		{pattern: "/api/devices/{id}", path: "/api/devices/", want: false},
		{pattern: "/api/devices/{id}", path: "/api/devices/dev-1/test", want: false},
		{pattern: "/api/devices/{id}/test", path: "/api/devices/dev-1/test", want: true},
		{pattern: "/static/*", path: "/static/css/app.css", want: true},
		{pattern: "/api/health", path: "/api/version", want: false},
		{pattern: "/", path: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, patternMatches(tt.pattern, tt.path))
		})
	}
}
