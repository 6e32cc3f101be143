package animal

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grazioso-salvare/shelterdex/internal/db"
	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// store is the consumer interface for animal reads (ISP).
type store interface {
	Find(ctx context.Context, collection string, filter any, opts db.FindOptions) ([]bson.M, error)
	Aggregate(ctx context.Context, collection string, pipeline []bson.M) ([]bson.M, error)
	Count(ctx context.Context, collection string, filter any) (int64, error)
}

// Repo implements usecase/animal.Repository over the outcomes collection.
type Repo struct {
	store      store
	collection string
}

// New creates an animal repository.
func New(s store, collection string) *Repo {
	return &Repo{store: s, collection: collection}
}

// List returns sanitized records matching the criteria, ordered by age
// ascending so the query is served by the rescue-filter compound index.
func (r *Repo) List(ctx context.Context, c domain.Criteria, skip, limit int64) ([]domain.Animal, error) {
	docs, err := r.store.Find(ctx, r.collection, FilterFor(c), db.FindOptions{
		Skip:  skip,
		Limit: limit,
		Sort:  bson.D{{Key: domain.FieldAgeWeeks, Value: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("find animals: %w", err)
	}

	animals := make([]domain.Animal, len(docs))
	for i, doc := range docs {
		animals[i] = animalFromDoc(doc)
	}
	return animals, nil
}

// Count returns the number of records matching the criteria.
func (r *Repo) Count(ctx context.Context, c domain.Criteria) (int64, error) {
	n, err := r.store.Count(ctx, r.collection, FilterFor(c))
	if err != nil {
		return 0, fmt.Errorf("count animals: %w", err)
	}
	return n, nil
}

// BreedCounts aggregates the breed distribution of the filtered set,
// most frequent first.
func (r *Repo) BreedCounts(ctx context.Context, c domain.Criteria) ([]domain.BreedCount, error) {
	pipeline := []bson.M{
		{"$match": FilterFor(c)},
		{"$group": bson.M{"_id": "$" + domain.FieldBreed, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$project": bson.M{domain.FieldBreed: "$_id", "count": 1, "_id": 0}},
	}

	docs, err := r.store.Aggregate(ctx, r.collection, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate breed counts: %w", err)
	}

	out := make([]domain.BreedCount, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.BreedCount{
			Breed: stringField(doc, domain.FieldBreed),
			Count: intField(doc, "count"),
		})
	}
	return out, nil
}

// SexCounts aggregates the sex_upon_outcome distribution of the filtered set.
func (r *Repo) SexCounts(ctx context.Context, c domain.Criteria) ([]domain.SexCount, error) {
	pipeline := []bson.M{
		{"$match": FilterFor(c)},
		{"$group": bson.M{"_id": "$" + domain.FieldSex, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$project": bson.M{domain.FieldSex: "$_id", "count": 1, "_id": 0}},
	}

	docs, err := r.store.Aggregate(ctx, r.collection, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate sex counts: %w", err)
	}

	out := make([]domain.SexCount, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.SexCount{
			Sex:   stringField(doc, domain.FieldSex),
			Count: intField(doc, "count"),
		})
	}
	return out, nil
}

// AgeSummary aggregates min/max/avg age over documents whose age field is
// actually numeric. Returns nil when the filtered set has no numeric ages.
func (r *Repo) AgeSummary(ctx context.Context, c domain.Criteria) (*domain.AgeSummary, error) {
	pipeline := []bson.M{
		{"$match": FilterFor(c)},
		{"$match": bson.M{domain.FieldAgeWeeks: bson.M{"$type": "number"}}},
		{"$group": bson.M{
			"_id":       nil,
			"min_weeks": bson.M{"$min": "$" + domain.FieldAgeWeeks},
			"max_weeks": bson.M{"$max": "$" + domain.FieldAgeWeeks},
			"avg_weeks": bson.M{"$avg": "$" + domain.FieldAgeWeeks},
		}},
		{"$project": bson.M{"_id": 0, "min_weeks": 1, "max_weeks": 1, "avg_weeks": 1}},
	}

	docs, err := r.store.Aggregate(ctx, r.collection, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate age summary: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	doc := docs[0]
	return &domain.AgeSummary{
		MinWeeks: floatField(doc, "min_weeks"),
		MaxWeeks: floatField(doc, "max_weeks"),
		AvgWeeks: floatField(doc, "avg_weeks"),
	}, nil
}
