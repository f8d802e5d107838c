// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultStatusPath is the leader-status endpoint of the remote store.
	DefaultStatusPath = "/v1/status/leader"
	// DefaultRequestTimeout bounds every call made to the remote store.
	DefaultRequestTimeout = 5 * time.Second
	// DefaultJWKSKey is the store key of the key set under KVPath.
	DefaultJWKSKey = "jwks"
	// DefaultVersionKey is the store key of the version under KVPath.
	DefaultVersionKey = "version"
	// DefaultJWKSFile is the key set file shipped with the deployment.
	DefaultJWKSFile = "jwks.json"
	// DefaultVersionFile is the version file shipped with the deployment.
	DefaultVersionFile = "VERSION"
	// DefaultHTTPAddress is the listen address of the demo host.
	DefaultHTTPAddress = "localhost:8080"
	// DefaultLogLevel is used when LOG_LEVEL is not set.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Consul describes where the remote key-value store lives.
	Consul Consul `envPrefix:"CONSUL_"`

	// Files holds the local fallback files for the JWKS and the version.
	Files Files `envPrefix:"FILES_"`

	// Server holds the listen settings of the demo host.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Consul holds the remote key-value store settings.
type Consul struct {
	// Address is the base URL of the store, e.g. "http://127.0.0.1:8500".
	// Env: CONSUL_ADDRESS
	Address string `env:"ADDRESS"`

	// StatusPath is appended to Address for the health probe.
	// Env: CONSUL_STATUS_PATH
	StatusPath string `env:"STATUS_PATH"`

	// KVPath is the configuration context: the key prefix under Address that
	// holds this service's keys, e.g. "v1/kv/config-develop/example-service".
	// Env: CONSUL_KV_PATH
	KVPath string `env:"KV_PATH"`

	// Keys lists the plain value keys the host resolves at startup.
	// Env: CONSUL_KEYS (comma separated)
	Keys []string `env:"KEYS" envSeparator:","`

	// JWKSKey is the key of the key set under KVPath.
	// Env: CONSUL_JWKS_KEY
	JWKSKey string `env:"JWKS_KEY"`

	// VersionKey is the key of the version under KVPath.
	// Env: CONSUL_VERSION_KEY
	VersionKey string `env:"VERSION_KEY"`

	// RequestTimeout is applied by the HTTP transport to every request.
	// Env: CONSUL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Files holds the local fallback sources.
type Files struct {
	// WorkingDir is the directory file names are resolved against. Empty
	// means the process working directory.
	// Env: FILES_WORKING_DIR
	WorkingDir string `env:"WORKING_DIR"`

	// JWKS is the key set file name.
	// Env: FILES_JWKS
	JWKS string `env:"JWKS"`

	// Version is the version file name.
	// Env: FILES_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings of the demo host.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Consul: Consul{
			StatusPath:     DefaultStatusPath,
			JWKSKey:        DefaultJWKSKey,
			VersionKey:     DefaultVersionKey,
			RequestTimeout: DefaultRequestTimeout,
		},
		Files: Files{
			JWKS:    DefaultJWKSFile,
			Version: DefaultVersionFile,
		},
		Server: Server{HTTPAddress: DefaultHTTPAddress},
		Log:    Log{Level: DefaultLogLevel},
	}
}
