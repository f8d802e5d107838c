package http

import (
	"net/http"
)

// getJWKS serves the public keys of the resolved key set. Private members
// and symmetric keys are never written.
func (h *Handler) getJWKS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(h.publicJWKS)
}
