package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoConsulAddress indicates that the remote store address is missing.
	ErrNoConsulAddress = errors.New("consul address is not specified")
	// ErrNoKVPath indicates that the configuration context path is missing.
	ErrNoKVPath = errors.New("consul kv path is not specified")
	// ErrNoRemoteKeys indicates that the JWKS or version store key is missing.
	ErrNoRemoteKeys = errors.New("jwks or version key is not specified")
	// ErrNoFallbackFiles indicates that a JWKS or version file name is missing.
	ErrNoFallbackFiles = errors.New("fallback file names are not specified")
	// ErrInvalidRequestTimeout indicates a negative request timeout.
	ErrInvalidRequestTimeout = errors.New("request timeout must not be negative")
)
