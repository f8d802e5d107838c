// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyValueEntry is a single record of the remote key-value store response.
//
// The store answers a key lookup with a JSON array of these records. Every
// field is optional: a nil Value means the entry carries no value at all,
// while a non-nil empty Value means the value is present but empty.
//
// JSON field names follow the store's wire format exactly (PascalCase).
type KeyValueEntry struct {
	// LockIndex is the number of times this key has been acquired in a lock.
	LockIndex *int64 `json:"LockIndex,omitempty"`

	// Key is the full path of the entry.
	Key *string `json:"Key,omitempty"`

	// Flags is an opaque unsigned integer attached to the entry.
	Flags *uint64 `json:"Flags,omitempty"`

	// Value is the entry payload encoded in standard base64.
	Value *string `json:"Value,omitempty"`

	// CreateIndex is the internal index at which the entry was created.
	CreateIndex *int64 `json:"CreateIndex,omitempty"`

	// ModifyIndex is the last index that modified this key.
	ModifyIndex *int64 `json:"ModifyIndex,omitempty"`
}

// GetKey returns the entry key or an empty string when it is absent.
func (e KeyValueEntry) GetKey() string {
	if e.Key == nil {
		return ""
	}
	return *e.Key
}
