// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-app-config/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrKeyNotFound is returned when no key of the set matches the token.
	ErrKeyNotFound = errors.New("no matching key in key set")
	// ErrKeyAlgorithmMismatch is returned when the matching key is pinned to
	// another algorithm than the token's.
	ErrKeyAlgorithmMismatch = errors.New("key algorithm does not match token")
	// ErrKeyNotAsymmetric is returned when the matching key is symmetric or
	// has no valid public form. Such keys never verify tokens.
	ErrKeyNotAsymmetric = errors.New("key is not an asymmetric key")
)

// methodsByKeyType lists the signing algorithms accepted for a key that does
// not pin one through its "alg" member.
var methodsByKeyType = map[string][]string{
	"RSA": {"RS256", "RS384", "RS512", "PS256", "PS384", "PS512"},
	"EC":  {"ES256", "ES384", "ES512"},
	"OKP": {"EdDSA"},
}

// KeyFunc returns a [jwt.Keyfunc] that verifies tokens against the
// asymmetric keys of set.
//
// The key is chosen by the token's "kid" header. A token without "kid" is
// accepted only when the set holds exactly one key. Symmetric keys are
// rejected with [ErrKeyNotAsymmetric]; private keys are reduced to their
// public half. Pair it with [ValidMethods] so that HMAC tokens are refused
// before any key is looked up.
//
// Example usage:
//
//	set, _ := models.ParseKeySet([]byte(jwks))
//	token, err := jwt.Parse(raw, utils.KeyFunc(set), jwt.WithValidMethods(utils.ValidMethods(set)))
func KeyFunc(set models.KeySet) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)

		var key models.KeySet
		switch {
		case kid != "":
			key.Keys = set.Key(kid)
		case set.Len() == 1:
			key.Keys = set.Keys
		}
		if key.Len() == 0 {
			return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
		}

		public := key.Public()
		if public.Len() == 0 {
			return nil, fmt.Errorf("%w: kid %q", ErrKeyNotAsymmetric, kid)
		}

		jwk := public.Keys[0]
		if jwk.Algorithm != "" && jwk.Algorithm != token.Method.Alg() {
			return nil, fmt.Errorf("%w: key %q is %s, token is %s", ErrKeyAlgorithmMismatch, jwk.KeyID, jwk.Algorithm, token.Method.Alg())
		}

		return jwk.Key, nil
	}
}

// ValidMethods returns the signing algorithms the asymmetric keys of set can
// verify, for use with [jwt.WithValidMethods]. The result is never nil: a set
// without asymmetric keys yields an empty list, which refuses every token.
func ValidMethods(set models.KeySet) []string {
	seen := make(map[string]struct{})
	methods := []string{}
	add := func(alg string) {
		if _, ok := seen[alg]; !ok {
			seen[alg] = struct{}{}
			methods = append(methods, alg)
		}
	}

	for _, key := range set.Public().Keys {
		if key.Algorithm != "" {
			add(key.Algorithm)
			continue
		}
		kty := ""
		switch key.Key.(type) {
		case *rsa.PublicKey:
			kty = "RSA"
		case *ecdsa.PublicKey:
			kty = "EC"
		case ed25519.PublicKey:
			kty = "OKP"
		}
		for _, alg := range methodsByKeyType[kty] {
			add(alg)
		}
	}

	return methods
}
