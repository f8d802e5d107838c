package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/go-chi/chi/v5"
)

type storeStatusResponse struct {
	StatusCode int  `json:"status_code"`
	Reachable  bool `json:"reachable"`
	OK         bool `json:"ok"`
}

// getValue returns a value resolved at startup. The key is the rest of the
// path, so keys may contain '/'. Keys that were not requested at startup are
// reported as 404; values are never resolved on demand.
func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "*")

	value, ok := h.snapshot.Value(key)
	if !ok {
		log.Err(ErrValueNotLoaded).Str("key", key).Send()
		http.Error(w, ErrValueNotLoaded.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(value))
}

// getStoreStatus probes the remote store now, not at startup.
func (h *Handler) getStoreStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppConfiguration.Status(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(storeStatusResponse{
		StatusCode: status.StatusCode,
		Reachable:  status.Reachable(),
		OK:         status.OK(),
	}); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding store status")
	}
}
