package domain

// Field names of the shelter outcomes collection. The repository and the
// provisioning specs share these so the indexes always match the queries.
const (
	FieldBreed    = "breed"
	FieldSex      = "sex_upon_outcome"
	FieldAgeWeeks = "age_upon_outcome_in_weeks"
	FieldLat      = "location_lat"
	FieldLong     = "location_long"
	FieldName     = "name"
)

// Animal is a sanitized shelter outcome record.
// Optional numeric fields are pointers: nil means absent or non-numeric in
// the stored document.
type Animal struct {
	Name           string   `json:"name"`
	Breed          string   `json:"breed"`
	SexUponOutcome string   `json:"sex_upon_outcome"`
	AgeWeeks       *float64 `json:"age_upon_outcome_in_weeks"`
	LocationLat    *float64 `json:"location_lat"`
	LocationLong   *float64 `json:"location_long"`
}

// HasLocation reports whether the record carries a usable coordinate pair.
func (a Animal) HasLocation() bool {
	return a.LocationLat != nil && a.LocationLong != nil
}

// BreedCount is one bucket of the breed distribution aggregation.
type BreedCount struct {
	Breed string `json:"breed"`
	Count int64  `json:"count"`
}

// SexCount is one bucket of the sex_upon_outcome distribution aggregation.
type SexCount struct {
	Sex   string `json:"sex_upon_outcome"`
	Count int64  `json:"count"`
}

// AgeSummary holds min/max/avg over numeric ages in a filtered set.
type AgeSummary struct {
	MinWeeks float64 `json:"min_weeks"`
	MaxWeeks float64 `json:"max_weeks"`
	AvgWeeks float64 `json:"avg_weeks"`
}
