// Package server wires and runs the dashboard's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup of
// the HTTP listener and the background workers, signal handling, and
// graceful shutdown.
package server
