package models

import "net/http"

// HealthStatus is the outcome of a single health probe against the remote
// store. The zero value means the store is unreachable: no HTTP response was
// received at all.
type HealthStatus struct {
	// StatusCode is the HTTP status code of the probe response, or 0 when the
	// probe failed at the transport level.
	StatusCode int
}

// Unreachable is the status reported when the probe got no response.
var Unreachable = HealthStatus{}

// Reachable reports whether the probe received any HTTP response.
func (s HealthStatus) Reachable() bool {
	return s.StatusCode != 0
}

// OK reports whether the probe succeeded with 200 OK. Only then is the remote
// tier worth trying.
func (s HealthStatus) OK() bool {
	return s.StatusCode == http.StatusOK
}

// String returns a human readable form used in log lines.
func (s HealthStatus) String() string {
	if !s.Reachable() {
		return "unreachable"
	}
	return http.StatusText(s.StatusCode)
}
