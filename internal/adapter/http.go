package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/utils"
	"github.com/MKhiriev/go-app-config/models"
)

type httpKVAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPKVAdapter constructs the HTTP implementation of [KVAdapter]. URLs are
// passed per call, so one adapter can serve several stores.
func NewHTTPKVAdapter(client *utils.HTTPClient, logger *logger.Logger) KVAdapter {
	return &httpKVAdapter{client: client, logger: logger}
}

// CheckHealth implements [KVAdapter].
func (h *httpKVAdapter) CheckHealth(ctx context.Context, baseURL, statusPath, contextLabel string) models.HealthStatus {
	status := models.Unreachable

	resp, err := h.client.R().
		SetContext(ctx).
		Get(baseURL + statusPath)
	if err == nil {
		status = models.HealthStatus{StatusCode: resp.StatusCode()}
	}

	h.logger.Debug().
		Str("url", baseURL).
		Str("path", statusPath).
		Str("context", contextLabel).
		Stringer("status", status).
		AnErr("transport_error", err).
		Msg("key-value store connection status")

	return status
}

// FetchKey implements [KVAdapter].
func (h *httpKVAdapter) FetchKey(ctx context.Context, uri string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	value, err := DecodeEnvelope(resp.Body(), uri)
	if errors.Is(err, ErrMalformedEnvelope) {
		h.logger.Error().Err(err).Str("uri", uri).Msg("failed to decode key-value store response")
	}

	return value, err
}
