package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grazioso-salvare/shelterdex/internal/db"
)

// Find runs a filtered, paginated query and decodes all documents.
func (s *Store) Find(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cur, err := s.collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, &db.Error{Op: db.OpFind, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &db.Error{Op: db.OpFind, Err: err}
	}
	return docs, nil
}

// Aggregate runs a pipeline and decodes all result documents.
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error) {
	cur, err := s.collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}
	defer func() { _ = cur.Close(ctx) }()

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}
	return docs, nil
}

// Count returns the number of documents matching the filter.
func (s *Store) Count(ctx context.Context, collection string, filter any) (int64, error) {
	n, err := s.collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, &db.Error{Op: db.OpCount, Err: err}
	}
	return n, nil
}
