package models

// Snapshot holds everything a host process resolves at startup.
type Snapshot struct {
	// Values maps each requested key to its resolved value.
	Values map[string]string

	// JWKS is the raw JSON of the resolved key set.
	JWKS string

	// Version is the resolved application version.
	Version string
}

// Value returns the resolved value for key and whether it was requested.
func (s Snapshot) Value(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}
