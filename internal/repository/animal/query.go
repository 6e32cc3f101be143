package animal

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// FilterFor translates rescue criteria into a MongoDB filter document.
// The clause order (breed, sex, age) mirrors the key order of the
// rescue-filter compound index.
func FilterFor(c domain.Criteria) bson.M {
	if c.IsZero() {
		return bson.M{}
	}

	clauses := make([]bson.M, 0, 3)
	if len(c.PreferredBreeds) > 0 {
		clauses = append(clauses, bson.M{domain.FieldBreed: bson.M{"$in": c.PreferredBreeds}})
	}
	if c.PreferredSex != "" {
		clauses = append(clauses, bson.M{domain.FieldSex: c.PreferredSex})
	}
	if c.MaxWeeks > 0 {
		clauses = append(clauses, bson.M{domain.FieldAgeWeeks: bson.M{
			"$gte": c.MinWeeks,
			"$lte": c.MaxWeeks,
		}})
	}

	if len(clauses) == 1 {
		return clauses[0]
	}
	return bson.M{"$and": clauses}
}
