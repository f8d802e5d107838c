// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the local fallback sources of configuration values:
// the process environment and files shipped next to the deployment.
//
// Readers never return structured errors. They log the reason at error level
// and report absence through their second return value; the caller decides
// whether absence is fatal.
package store

// EnvironmentReader looks values up in the process environment.
type EnvironmentReader interface {
	// Lookup returns the value of the environment variable key. ok is false
	// when the variable is unset or empty.
	Lookup(key string) (value string, ok bool)
}

// FileReader reads fallback files relative to a working directory.
type FileReader interface {
	// Read returns the content of fileName. ok is false when the file is
	// missing, unreadable, or empty.
	Read(fileName string) (content []byte, ok bool)
}
