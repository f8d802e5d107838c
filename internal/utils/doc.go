// Package utils provides general-purpose helpers used across the module:
// the shared HTTP client and JWT key lookup against a resolved key set.
package utils
