package handler

import (
	"github.com/MKhiriev/go-app-config/internal/config"
	"github.com/MKhiriev/go-app-config/internal/handler/http"
	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/service"
	"github.com/MKhiriev/go-app-config/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, snapshot models.Snapshot, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, snapshot, logger),
	}, nil
}
