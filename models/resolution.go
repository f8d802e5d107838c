// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode"
)

// ResolutionRequest describes where and under which configuration context a
// value is looked up.
type ResolutionRequest struct {
	// BaseURL is the key-value root of the remote store, e.g.
	// "http://127.0.0.1:8500/v1/kv/config-develop".
	BaseURL string

	// Path is the key relative to BaseURL, e.g. "example-service/server-port".
	// It doubles as the source of the environment-variable fallback key.
	Path string

	// ContextLabel names the configuration context (stage, develop...). It
	// is only used in log lines.
	ContextLabel string
}

// URI returns the full remote address of the key: BaseURL + "/" + Path.
func (r ResolutionRequest) URI() string {
	return r.BaseURL + "/" + r.Path
}

// EnvironmentKey returns the environment variable name derived from Path.
func (r ResolutionRequest) EnvironmentKey() string {
	return DeriveEnvironmentKey(r.Path)
}

// DeriveEnvironmentKey converts a store path into an UPPER_SNAKE_CASE
// environment variable name: every rune that is not an ASCII letter or digit
// becomes '_', letters are upper-cased.
//
//	DeriveEnvironmentKey("server-port")         == "SERVER_PORT"
//	DeriveEnvironmentKey("example/server-port") == "EXAMPLE_SERVER_PORT"
func DeriveEnvironmentKey(path string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return unicode.ToUpper(r)
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, path)
}

// Source identifies the tier a value was resolved from.
type Source string

const (
	SourceRemote      Source = "remote"
	SourceEnvironment Source = "environment"
	SourceLocalFile   Source = "local_file"
)
