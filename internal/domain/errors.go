package domain

import "errors"

var (
	// ErrNotFound signals a missing resource (collection, record).
	ErrNotFound = errors.New("not found")
	// ErrUnknownFilter signals a rescue filter type outside the whitelist.
	ErrUnknownFilter = errors.New("unknown rescue filter type")
	// ErrInvalidSchema signals an invalid validator or index definition.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrIndexConflict signals an index name reused with a different definition.
	ErrIndexConflict = errors.New("index definition conflict")
)
