// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// key-value store.
//
// The primary abstraction is [KVAdapter], which decouples the resolver from
// the HTTP protocol. The package ships an HTTP implementation built on resty
// ([NewHTTPKVAdapter]) and the envelope codec [DecodeEnvelope].
//
// Error values defined in errors.go let callers use [errors.Is] to tell soft
// misses (transport problems, malformed bodies) from structural problems
// (missing entry, invalid base64).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_adapter_mock.go -package=mock

// KVAdapter defines communication with the remote key-value store.
// Implementations hold no per-call state and are safe for concurrent use.
type KVAdapter interface {
	// CheckHealth issues a single GET to baseURL + statusPath and reports the
	// response status. It never fails: any transport problem, timeout or
	// cancellation yields [models.Unreachable]. contextLabel only names the
	// configuration context in log lines.
	CheckHealth(ctx context.Context, baseURL, statusPath, contextLabel string) models.HealthStatus

	// FetchKey issues a GET to uri and returns the decoded value of the first
	// envelope entry. Errors wrap the sentinels of this package.
	FetchKey(ctx context.Context, uri string) ([]byte, error)
}
