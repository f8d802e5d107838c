// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v4"
)

// ErrEmptyKeySet is returned by [ParseKeySet] when the document is a valid
// key set with no keys in it.
var ErrEmptyKeySet = errors.New("key set has no keys")

// KeySet is an ordered collection of JSON Web Keys (RFC 7517).
type KeySet struct {
	jose.JSONWebKeySet
}

// ParseKeySet decodes raw JSON into a [KeySet]. Each key record is validated
// by go-jose, so unknown key types or broken key material fail the parse.
// A structurally valid set with zero keys returns [ErrEmptyKeySet].
func ParseKeySet(raw []byte) (KeySet, error) {
	var set KeySet
	if err := json.Unmarshal(raw, &set.JSONWebKeySet); err != nil {
		return KeySet{}, fmt.Errorf("error decoding key set: %w", err)
	}
	if len(set.Keys) == 0 {
		return KeySet{}, ErrEmptyKeySet
	}

	return set, nil
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s.Keys)
}

// Public returns the asymmetric keys of the set reduced to their public
// half. Symmetric keys and keys without a valid public form are dropped.
func (s KeySet) Public() KeySet {
	var public KeySet
	for _, key := range s.Keys {
		if _, symmetric := key.Key.([]byte); symmetric {
			continue
		}
		if pub := key.Public(); pub.Valid() {
			public.Keys = append(public.Keys, pub)
		}
	}
	return public
}
