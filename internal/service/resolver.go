// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-app-config/internal/adapter"
	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/store"
	"github.com/MKhiriev/go-app-config/models"
)

type resolver struct {
	kv    adapter.KVAdapter
	env   store.EnvironmentReader
	files store.FileReader

	logger *logger.Logger
}

func NewResolver(kv adapter.KVAdapter, env store.EnvironmentReader, files store.FileReader, logger *logger.Logger) Resolver {
	return &resolver{
		kv:     kv,
		env:    env,
		files:  files,
		logger: logger,
	}
}

func (r *resolver) ResolveValue(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest) (string, error) {
	uri := req.URI()

	if status.OK() {
		raw, err := r.fetchRemote(ctx, uri)
		if err != nil {
			return "", err
		}
		if len(raw) > 0 {
			r.logResolved(models.SourceRemote, uri, req)
			return string(raw), nil
		}
	}

	key := req.EnvironmentKey()
	value, ok := r.env.Lookup(key)
	if !ok {
		return "", newFatalError(models.SourceEnvironment, key, ErrValueNotFound)
	}

	r.logResolved(models.SourceEnvironment, key, req)
	return value, nil
}

func (r *resolver) ResolveJWKS(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest, fileName string) (string, error) {
	uri := req.URI()

	if status.OK() {
		raw, err := r.fetchRemote(ctx, uri)
		if err != nil {
			return "", err
		}
		if len(raw) > 0 {
			set, parseErr := models.ParseKeySet(raw)
			if parseErr == nil {
				r.logResolved(models.SourceRemote, uri, req, "keys", set.Len())
				return string(raw), nil
			}
			r.logger.Error().Err(parseErr).Str("uri", uri).Msg("remote value is not a usable key set")
		}
	}

	content, err := r.readFile(fileName)
	if err != nil {
		return "", err
	}

	r.logResolved(models.SourceLocalFile, fileName, req)
	return content, nil
}

func (r *resolver) ResolveVersion(ctx context.Context, status models.HealthStatus, req models.ResolutionRequest, fileName string) (string, error) {
	uri := req.URI()

	if status.OK() {
		raw, err := r.fetchRemote(ctx, uri)
		if err != nil {
			return "", err
		}
		if version := trimVersion(string(raw)); version != "" {
			r.logResolved(models.SourceRemote, uri, req)
			return version, nil
		}
		if len(raw) > 0 {
			r.logger.Error().Str("uri", uri).Msg("remote version holds only newlines")
		}
	}

	content, err := r.readFile(fileName)
	if err != nil {
		return "", err
	}

	version := trimVersion(content)
	if version == "" {
		return "", newFatalError(models.SourceLocalFile, fileName, ErrEmptyValue)
	}

	r.logResolved(models.SourceLocalFile, fileName, req)
	return version, nil
}

// fetchRemote returns the decoded remote value. Soft misses are logged and
// reported as a nil value with a nil error.
func (r *resolver) fetchRemote(ctx context.Context, uri string) ([]byte, error) {
	raw, err := r.kv.FetchKey(ctx, uri)
	if err == nil {
		if len(raw) == 0 {
			r.logger.Error().Str("uri", uri).Msg("remote value is empty, falling back")
		}
		return raw, nil
	}

	if fatal := mapAdapterError(err, uri); fatal != nil {
		r.logger.Error().Err(err).Str("uri", uri).Msg("remote value is broken")
		return nil, fatal
	}

	r.logger.Error().Err(err).Str("uri", uri).Msg("failed to fetch remote value, falling back")
	return nil, nil
}

func (r *resolver) readFile(fileName string) (string, error) {
	content, ok := r.files.Read(fileName)
	if !ok {
		return "", newFatalError(models.SourceLocalFile, fileName, ErrFileNotFound)
	}
	if !utf8.Valid(content) {
		r.logger.Error().Str("file", fileName).Msg("file content is not valid UTF-8")
		return "", newFatalError(models.SourceLocalFile, fileName, ErrInvalidUTF8)
	}

	return string(content), nil
}

func (r *resolver) logResolved(source models.Source, location string, req models.ResolutionRequest, fields ...any) {
	r.logger.Info().
		Str("source", string(source)).
		Str("location", location).
		Str("key", req.Path).
		Str("context", req.ContextLabel).
		Fields(fields).
		Msg("configuration value resolved")
}

func trimVersion(s string) string {
	return strings.TrimRight(s, "\r\n")
}
