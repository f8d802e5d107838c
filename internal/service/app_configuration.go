// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-app-config/internal/adapter"
	"github.com/MKhiriev/go-app-config/internal/config"
	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/models"
	"golang.org/x/sync/errgroup"
)

type appConfiguration struct {
	resolver Resolver
	kv       adapter.KVAdapter

	consul config.Consul
	files  config.Files

	logger *logger.Logger
}

func NewAppConfiguration(resolver Resolver, kv adapter.KVAdapter, consul config.Consul, files config.Files, logger *logger.Logger) AppConfiguration {
	return &appConfiguration{
		resolver: resolver,
		kv:       kv,
		consul:   consul,
		files:    files,
		logger:   logger,
	}
}

func (a *appConfiguration) Status(ctx context.Context) models.HealthStatus {
	return a.kv.CheckHealth(ctx, a.consul.Address, a.consul.StatusPath, a.consul.KVPath)
}

func (a *appConfiguration) Value(ctx context.Context, key string) (string, error) {
	return a.resolver.ResolveValue(ctx, a.Status(ctx), a.request(key))
}

func (a *appConfiguration) JWKS(ctx context.Context) (string, error) {
	return a.resolver.ResolveJWKS(ctx, a.Status(ctx), a.request(a.consul.JWKSKey), a.files.JWKS)
}

func (a *appConfiguration) Version(ctx context.Context) (string, error) {
	return a.resolver.ResolveVersion(ctx, a.Status(ctx), a.request(a.consul.VersionKey), a.files.Version)
}

func (a *appConfiguration) Load(ctx context.Context, keys ...string) (models.Snapshot, error) {
	status := a.Status(ctx)
	a.logger.Info().
		Stringer("status", status).
		Int("keys", len(keys)).
		Msg("loading configuration")

	values := make([]string, len(keys))
	var snapshot models.Snapshot

	g, gCtx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			value, err := a.resolver.ResolveValue(gCtx, status, a.request(key))
			values[i] = value
			return err
		})
	}
	g.Go(func() error {
		jwks, err := a.resolver.ResolveJWKS(gCtx, status, a.request(a.consul.JWKSKey), a.files.JWKS)
		snapshot.JWKS = jwks
		return err
	})
	g.Go(func() error {
		version, err := a.resolver.ResolveVersion(gCtx, status, a.request(a.consul.VersionKey), a.files.Version)
		snapshot.Version = version
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Snapshot{}, err
	}

	snapshot.Values = make(map[string]string, len(keys))
	for i, key := range keys {
		snapshot.Values[key] = values[i]
	}

	return snapshot, nil
}

// request builds the lookup for key under the configured KV path.
func (a *appConfiguration) request(key string) models.ResolutionRequest {
	return models.ResolutionRequest{
		BaseURL:      strings.TrimRight(a.consul.Address, "/") + "/" + strings.Trim(a.consul.KVPath, "/"),
		Path:         key,
		ContextLabel: a.consul.KVPath,
	}
}
