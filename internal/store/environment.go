package store

import (
	"os"

	"github.com/MKhiriev/go-app-config/internal/logger"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type environmentReader struct {
	lookup LookupFunc

	logger *logger.Logger
}

// NewEnvironmentReader returns an [EnvironmentReader] backed by os.LookupEnv.
func NewEnvironmentReader(logger *logger.Logger) EnvironmentReader {
	return NewEnvironmentReaderWithLookup(os.LookupEnv, logger)
}

// NewEnvironmentReaderWithLookup returns an [EnvironmentReader] backed by an
// arbitrary lookup function, e.g. a map in tests.
func NewEnvironmentReaderWithLookup(lookup LookupFunc, logger *logger.Logger) EnvironmentReader {
	return &environmentReader{lookup: lookup, logger: logger}
}

func (e *environmentReader) Lookup(key string) (string, bool) {
	value, ok := e.lookup(key)
	if !ok || value == "" {
		e.logger.Error().Str("key", key).Msg("no value was found in environment")
		return "", false
	}

	e.logger.Debug().Str("key", key).Msg("value found in environment")
	return value, true
}
