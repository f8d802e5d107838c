package service

import (
	"fmt"

	"github.com/MKhiriev/go-app-config/internal/adapter"
	"github.com/MKhiriev/go-app-config/internal/config"
	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/store"
	"github.com/MKhiriev/go-app-config/internal/utils"
)

type Services struct {
	Resolver         Resolver
	AppConfiguration AppConfiguration
}

func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	files, err := store.NewLocalFileReader(cfg.Files.WorkingDir, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating local file reader: %w", err)
	}

	kv := adapter.NewHTTPKVAdapter(utils.NewHTTPClient(cfg.Consul.RequestTimeout), logger)
	resolver := NewResolver(kv, store.NewEnvironmentReader(logger), files, logger)

	return &Services{
		Resolver:         resolver,
		AppConfiguration: NewAppConfiguration(resolver, kv, cfg.Consul, cfg.Files, logger),
	}, nil
}
