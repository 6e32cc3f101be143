package provision

import (
	"github.com/grazioso-salvare/shelterdex/internal/db"
	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// Index names in the outcomes collection's catalog.
const (
	// IndexRescueFilter serves combined breed+sex predicates with a range
	// or sort on age (prefix-usable for breed-only queries too).
	IndexRescueFilter = "idx_rescue_filter"
	// IndexAge serves standalone sorts and range filters on age.
	IndexAge = "idx_age"
)

// ShelterValidator is the canonical validator for the outcomes collection.
// The moderate level is deliberate: the historical Austin Animal Center dump
// contains records that predate the schema, and those must stay readable.
// Only inserts and updates are held to the rule.
func ShelterValidator(collection string) *db.ValidatorSpec {
	return db.NewValidator(collection).
		RequireString(domain.FieldBreed).
		RequireString(domain.FieldSex).
		RequireNumeric(domain.FieldAgeWeeks, db.Min(0)).
		OptionalNumeric(domain.FieldLat, db.Range(-90, 90)).
		OptionalNumeric(domain.FieldLong, db.Range(-180, 180)).
		Moderate().
		MustBuild()
}

// ShelterIndexes are the secondary indexes for the outcomes collection,
// in creation order.
func ShelterIndexes() []*db.IndexSpec {
	return []*db.IndexSpec{
		db.NewIndex(IndexRescueFilter).
			Asc(domain.FieldBreed).
			Asc(domain.FieldSex).
			Asc(domain.FieldAgeWeeks).
			MustBuild(),
		db.NewIndex(IndexAge).
			Asc(domain.FieldAgeWeeks).
			MustBuild(),
	}
}
