// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-app-config/models"
)

// DecodeEnvelope extracts the raw value from a key-value store response.
//
// The body must be a JSON array of [models.KeyValueEntry]; only the first
// entry is consulted. Its Value is decoded from standard base64.
//
// Returned errors wrap:
//   - [ErrMalformedEnvelope] when body is not a JSON array;
//   - [ErrEntryNotFound] when the array is empty or the first entry has no Value;
//   - [ErrInvalidBase64] when Value cannot be decoded.
//
// A present but empty Value decodes to an empty, non-nil slice and no error.
func DecodeEnvelope(body []byte, uri string) ([]byte, error) {
	var entries []models.KeyValueEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEnvelope, uri, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: %s: null body", ErrMalformedEnvelope, uri)
	}

	if len(entries) == 0 || entries[0].Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, uri)
	}

	raw, err := base64.StdEncoding.DecodeString(*entries[0].Value)
	if err != nil {
		return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidBase64, entries[0].GetKey(), err)
	}

	return raw, nil
}
