// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-app-config/models"
)

var (
	// ErrFatalConfiguration is the root of every error that leaves a value
	// without a source. Hosts are expected to stop on it.
	ErrFatalConfiguration = errors.New("fatal configuration error")

	ErrValueNotFound  = errors.New("no value was found")
	ErrFileNotFound   = errors.New("no readable file was found")
	ErrInvalidUTF8    = errors.New("content is not valid UTF-8")
	ErrEmptyValue     = errors.New("value is empty")
)

// FatalError reports which tier gave up on which key.
// errors.Is(err, ErrFatalConfiguration) holds for every FatalError.
type FatalError struct {
	Source models.Source
	Key    string
	Err    error
}

func newFatalError(source models.Source, key string, err error) *FatalError {
	return &FatalError{Source: source, Key: key, Err: err}
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrFatalConfiguration, e.Source, e.Key, e.Err)
}

func (e *FatalError) Unwrap() []error {
	return []error{ErrFatalConfiguration, e.Err}
}
