// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-app-config/internal/adapter"
	"github.com/MKhiriev/go-app-config/models"
)

// mapAdapterError translates a remote-tier error into a fatal error, or
// returns nil when the error is a soft miss and the next tier may be tried.
func mapAdapterError(err error, uri string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrEntryNotFound),
		errors.Is(err, adapter.ErrInvalidBase64):
		return newFatalError(models.SourceRemote, uri, err)
	default:
		return nil
	}
}
