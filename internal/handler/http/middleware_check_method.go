// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The PANfm Authors

package http

import (
	"net/http"
	"strings"

	"github.com/csmblade/PANfm/internal/app"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/go-chi/chi/v5"
)

// routeMethods are the methods reported in the Allow header, in order.
var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// The handler walks every route registered on router, nested subrouters
// included, and collects the methods whose full pattern matches the
// requested path. When some method matches, the response is a JSON HTTP 405
// with an Allow header listing those methods; otherwise it is a JSON
// HTTP 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)

		if len(allowed) == 0 {
			utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// allowedMethods lists the routeMethods registered on router for a pattern
// matching path.
func allowedMethods(router chi.Routes, path string) []string {
	matched := make(map[string]bool, len(routeMethods))
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if !matched[method] && patternMatches(route, path) {
			matched[method] = true
		}
		return nil
	})

	var allowed []string
	for _, method := range routeMethods {
		if matched[method] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// patternMatches reports whether a chi route pattern matches path segment by
// segment. A segment holding a {param} matches any non-empty segment, a
// trailing * matches the rest of the path. Trailing slashes are ignored.
func patternMatches(pattern, path string) bool {
	want := splitPath(pattern)
	got := splitPath(path)

	for i, seg := range want {
		if seg == "*" && i == len(want)-1 {
			return true
		}
		if i >= len(got) {
			return false
		}
		if strings.Contains(seg, "{") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return len(want) == len(got)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
