package http

import (
	"encoding/json"

	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/service"
	"github.com/MKhiriev/go-app-config/models"
	"github.com/go-jose/go-jose/v4"
)

type Handler struct {
	services *service.Services
	snapshot models.Snapshot

	// keySet holds only the public halves of the asymmetric keys of the
	// resolved JWKS. publicJWKS is its JSON form, served to clients.
	keySet     models.KeySet
	publicJWKS []byte

	logger *logger.Logger
}

func NewHandler(services *service.Services, snapshot models.Snapshot, logger *logger.Logger) *Handler {
	var keySet models.KeySet
	if parsed, err := models.ParseKeySet([]byte(snapshot.JWKS)); err != nil {
		logger.Warn().Err(err).Msg("resolved JWKS is not a key set")
	} else {
		keySet = parsed.Public()
	}
	if keySet.Len() == 0 {
		keySet.Keys = []jose.JSONWebKey{}
		logger.Warn().Msg("resolved JWKS holds no public keys, protected routes will reject every token")
	}

	publicJWKS, err := json.Marshal(keySet.JSONWebKeySet)
	if err != nil {
		logger.Error().Err(err).Msg("error encoding public key set")
		publicJWKS = []byte(`{"keys":[]}`)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		snapshot:   snapshot,
		keySet:     keySet,
		publicJWKS: publicJWKS,
		logger:     logger,
	}
}
