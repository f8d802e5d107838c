// Package http serves the configuration resolved at startup.
//
// It exposes the application version, the public key set and, for callers
// holding a token signed by that key set, the plain configuration values.
// Request tracing and access logging are applied to every route.
package http
