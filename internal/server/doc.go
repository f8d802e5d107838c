// Package server runs the HTTP server of the demo host.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown with a bounded timeout.
package server
