package mongo

import (
	"context"

	"github.com/grazioso-salvare/shelterdex/internal/db"
)

// InsertOne writes a single document. A document that violates the collection
// validator surfaces the engine's DocumentValidationFailure verbatim through
// the wrapped error.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any) error {
	if _, err := s.collection(collection).InsertOne(ctx, doc); err != nil {
		return &db.Error{Op: db.OpInsert, Err: err}
	}
	return nil
}
