package animal

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// animalFromDoc sanitizes a raw document into a domain record: the object id
// is dropped, string fields default to empty, numeric fields become nil
// pointers when absent or stored as a non-numeric type.
func animalFromDoc(doc bson.M) domain.Animal {
	return domain.Animal{
		Name:           stringField(doc, domain.FieldName),
		Breed:          stringField(doc, domain.FieldBreed),
		SexUponOutcome: stringField(doc, domain.FieldSex),
		AgeWeeks:       numericField(doc, domain.FieldAgeWeeks),
		LocationLat:    numericField(doc, domain.FieldLat),
		LocationLong:   numericField(doc, domain.FieldLong),
	}
}

func stringField(doc bson.M, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

// numericField coerces any BSON numeric representation to *float64.
func numericField(doc bson.M, key string) *float64 {
	v, ok := doc[key]
	if !ok {
		return nil
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	default:
		return nil
	}
	return &f
}

func floatField(doc bson.M, key string) float64 {
	if f := numericField(doc, key); f != nil {
		return *f
	}
	return 0
}

func intField(doc bson.M, key string) int64 {
	if f := numericField(doc, key); f != nil {
		return int64(*f)
	}
	return 0
}
