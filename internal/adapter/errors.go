package adapter

import "errors"

var (
	// ErrRequestFailed means the request got no HTTP response.
	ErrRequestFailed = errors.New("request to key-value store failed")
	// ErrNotFound means the store answered 404 for the key.
	ErrNotFound = errors.New("key not found")
	// ErrUnexpectedStatus means the store answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedEnvelope means the body is not a JSON array of entries.
	ErrMalformedEnvelope = errors.New("malformed key-value envelope")
	// ErrEntryNotFound means a well-formed envelope has no first entry, or
	// the first entry carries no Value field.
	ErrEntryNotFound = errors.New("no value was found in key-value envelope")
	// ErrInvalidBase64 means the entry Value is not valid standard base64.
	ErrInvalidBase64 = errors.New("entry value is not valid base64")
)
