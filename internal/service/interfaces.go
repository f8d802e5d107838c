// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service resolves configuration values through an ordered chain of
// sources: the remote key-value store first (only when its health check
// answered 200), then the process environment or a local file.
//
// A miss in the remote tier is logged and falls through. A miss in the last
// tier, or a remote response that is well-formed but carries no entry or a
// broken value, yields a [*FatalError].
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-app-config/models"
)

// Resolver resolves single values against an already known store status.
type Resolver interface {
	// ResolveValue returns the remote value of req, falling back to the
	// environment variable derived from req.Path.
	ResolveValue(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest) (string, error)

	// ResolveJWKS returns the remote key set of req if it parses as a
	// non-empty JWKS, falling back to the content of fileName.
	ResolveJWKS(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest, fileName string) (string, error)

	// ResolveVersion returns the remote version of req, falling back to the
	// content of fileName. Trailing line endings (LF and CRLF) are stripped on
	// both tiers.
	ResolveVersion(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest, fileName string) (string, error)
}

// AppConfiguration is the process-wide entry point, built once from
// configuration and passed to whoever needs values.
type AppConfiguration interface {
	Status(ctx context.Context) models.HealthStatus

	Value(ctx context.Context, key string) (string, error)
	JWKS(ctx context.Context) (string, error)
	Version(ctx context.Context) (string, error)

	// Load checks the store once and resolves keys, the JWKS and the version
	// concurrently. The first fatal error cancels the rest.
	Load(ctx context.Context, keys ...string) (models.Snapshot, error)
}
