package animal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grazioso-salvare/shelterdex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	findFn      func(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error)
	aggregateFn func(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error)
	countFn     func(ctx context.Context, collection string, filter any) (int64, error)
}

func (m *mockStore) Find(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error) {
	if m.findFn != nil {
		return m.findFn(ctx, collection, filter, opts)
	}
	return nil, nil
}

func (m *mockStore) Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, collection, pipeline)
	}
	return nil, nil
}

func (m *mockStore) Count(ctx context.Context, collection string, filter any) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, collection, filter)
	}
	return 0, nil
}
