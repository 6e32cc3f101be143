package animal

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAnimalFromDoc_Complete(t *testing.T) {
	doc := bson.M{
		"_id":                       primitive.NewObjectID(),
		"name":                      "Rex",
		"breed":                     "Labrador Retriever Mix",
		"sex_upon_outcome":          "Intact Female",
		"age_upon_outcome_in_weeks": 52.5,
		"location_lat":              30.75,
		"location_long":             -97.48,
	}

	a := animalFromDoc(doc)

	if a.Name != "Rex" || a.Breed != "Labrador Retriever Mix" {
		t.Errorf("unexpected strings: %+v", a)
	}
	if a.AgeWeeks == nil || *a.AgeWeeks != 52.5 {
		t.Errorf("age: got %v, want 52.5", a.AgeWeeks)
	}
	if !a.HasLocation() {
		t.Error("expected usable location")
	}
}

func TestAnimalFromDoc_IntegerAge(t *testing.T) {
	// Historical records store age as int32 or int64 depending on the importer.
	for _, v := range []any{int32(52), int64(52), 52} {
		a := animalFromDoc(bson.M{"age_upon_outcome_in_weeks": v})
		if a.AgeWeeks == nil || *a.AgeWeeks != 52 {
			t.Errorf("age from %T: got %v, want 52", v, a.AgeWeeks)
		}
	}
}

func TestAnimalFromDoc_MissingOrBadFields(t *testing.T) {
	a := animalFromDoc(bson.M{
		"breed":                     "Terrier Mix",
		"age_upon_outcome_in_weeks": "unknown", // legacy string value
	})

	if a.AgeWeeks != nil {
		t.Errorf("non-numeric age must sanitize to nil, got %v", *a.AgeWeeks)
	}
	if a.SexUponOutcome != "" {
		t.Errorf("missing sex must default to empty, got %q", a.SexUponOutcome)
	}
	if a.HasLocation() {
		t.Error("missing coordinates must not report a location")
	}
}
