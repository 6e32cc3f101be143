package db

import "errors"

// Sentinel errors for administrative database operations.
var (
	ErrCollectionNotFound = errors.New("db: collection not found")
	ErrInvalidValidator   = errors.New("db: invalid validator document")
	ErrIndexConflict      = errors.New("db: index already exists with a different definition")
)

// Op constants map to MongoDB command names for error context.
const (
	OpCollMod       = "collMod"
	OpCreateIndexes = "createIndexes"
	OpFind          = "find"
	OpAggregate     = "aggregate"
	OpCount         = "count"
	OpInsert        = "insert"
	OpPing          = "ping"
)

// Error wraps an underlying engine error with the command name for diagnostics.
// The engine's error text is surfaced verbatim through Unwrap.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
