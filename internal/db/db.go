package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers use the narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	Admin
	Reader
	Writer
	Close(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Admin issues collection-level administrative commands. Each call is a
// single request/response exchange: the engine serializes concurrent
// catalog changes on its own, no local coordination happens here.
type Admin interface {
	// ApplyValidator replaces the collection's validator with the spec.
	ApplyValidator(ctx context.Context, spec *ValidatorSpec) error
	// EnsureIndex creates the named index. Re-issuing an identical
	// definition is a no-op; a different definition under the same name
	// fails with ErrIndexConflict.
	EnsureIndex(ctx context.Context, collection string, spec *IndexSpec) error
}

// FindOptions carries pagination and ordering for Find.
type FindOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Reader provides read operations over a collection.
type Reader interface {
	Find(ctx context.Context, collection string, filter any, opts FindOptions) ([]bson.M, error)
	Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error)
	Count(ctx context.Context, collection string, filter any) (int64, error)
}

// Writer provides write operations, used by the seeding path.
type Writer interface {
	InsertOne(ctx context.Context, collection string, doc any) error
}
