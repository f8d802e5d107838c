// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] has everything the
// resolver needs before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Consul.Address) == "" {
		return ErrNoConsulAddress
	}

	if strings.Trim(cfg.Consul.KVPath, "/ ") == "" {
		return ErrNoKVPath
	}

	if cfg.Consul.RequestTimeout < 0 {
		return ErrInvalidRequestTimeout
	}

	if cfg.Consul.JWKSKey == "" || cfg.Consul.VersionKey == "" {
		return ErrNoRemoteKeys
	}

	if cfg.Files.JWKS == "" || cfg.Files.Version == "" {
		return ErrNoFallbackFiles
	}

	return nil
}
