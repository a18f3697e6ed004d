// Package http implements the HTTP transport layer of the dashboard.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Cross-cutting concerns such as session authentication, request
// tracing, access logging and request metrics are handled in this package
// before requests are delegated to the service layer.
package http
