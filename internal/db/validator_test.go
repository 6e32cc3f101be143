package db

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestValidatorBuilder_Defaults(t *testing.T) {
	spec, err := NewValidator("animals").RequireString("breed").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Collection != "animals" {
		t.Errorf("collection: got %q, want %q", spec.Collection, "animals")
	}
	if spec.Level != LevelModerate {
		t.Errorf("level: got %q, want moderate", spec.Level)
	}
	if spec.Action != "error" {
		t.Errorf("action: got %q, want error", spec.Action)
	}
}

func TestValidatorBuilder_Strict(t *testing.T) {
	spec := NewValidator("animals").RequireString("breed").Strict().MustBuild()
	if spec.Level != LevelStrict {
		t.Errorf("level: got %q, want strict", spec.Level)
	}
}

func TestValidatorBuilder_NoRequiredFields(t *testing.T) {
	_, err := NewValidator("animals").OptionalNumeric("location_lat").Build()
	if err == nil {
		t.Fatal("expected error when no field is required")
	}
}

func TestValidatorBuilder_EmptyCollection(t *testing.T) {
	_, err := NewValidator("").RequireString("breed").Build()
	if err == nil {
		t.Fatal("expected error for empty collection name")
	}
}

func TestValidatorBuilder_DuplicateField(t *testing.T) {
	_, err := NewValidator("animals").
		RequireString("breed").
		RequireString("breed").
		Build()
	if err == nil {
		t.Fatal("expected error for duplicate field rule")
	}
	if !strings.Contains(err.Error(), "breed") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestSchema_RequiredAndTypes(t *testing.T) {
	spec := NewValidator("animals").
		RequireString("breed").
		RequireString("sex_upon_outcome").
		RequireNumeric("age_upon_outcome_in_weeks", Min(0)).
		OptionalNumeric("location_lat", Range(-90, 90)).
		MustBuild()

	schema := spec.Schema()

	if schema["bsonType"] != "object" {
		t.Errorf("bsonType: got %v, want object", schema["bsonType"])
	}

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("required: got %T, want []string", schema["required"])
	}
	want := []string{"breed", "sex_upon_outcome", "age_upon_outcome_in_weeks"}
	if len(required) != len(want) {
		t.Fatalf("required: got %v, want %v", required, want)
	}
	for i := range want {
		if required[i] != want[i] {
			t.Errorf("required[%d]: got %q, want %q", i, required[i], want[i])
		}
	}

	props, ok := schema["properties"].(bson.M)
	if !ok {
		t.Fatalf("properties: got %T, want bson.M", schema["properties"])
	}

	breed := props["breed"].(bson.M)
	if breed["bsonType"] != "string" {
		t.Errorf("breed bsonType: got %v, want string", breed["bsonType"])
	}

	age := props["age_upon_outcome_in_weeks"].(bson.M)
	types, ok := age["bsonType"].([]string)
	if !ok || len(types) != 4 {
		t.Fatalf("age bsonType: got %v, want 4 numeric aliases", age["bsonType"])
	}
	if age["minimum"] != float64(0) {
		t.Errorf("age minimum: got %v, want 0", age["minimum"])
	}
	if _, hasMax := age["maximum"]; hasMax {
		t.Error("age should have no maximum")
	}

	lat := props["location_lat"].(bson.M)
	if lat["minimum"] != float64(-90) || lat["maximum"] != float64(90) {
		t.Errorf("lat bounds: got min=%v max=%v, want -90/90", lat["minimum"], lat["maximum"])
	}
}

func TestSchema_OptionalFieldsNotRequired(t *testing.T) {
	spec := NewValidator("animals").
		RequireString("breed").
		OptionalNumeric("location_lat", Range(-90, 90)).
		MustBuild()

	required := spec.Schema()["required"].([]string)
	for _, f := range required {
		if f == "location_lat" {
			t.Error("optional field must not appear in required list")
		}
	}
}

func TestValidatorSpec_String(t *testing.T) {
	spec := NewValidator("animals").
		RequireNumeric("age_upon_outcome_in_weeks", Min(0)).
		MustBuild()

	s := spec.String()
	for _, part := range []string{"collMod", "animals", "moderate", "age_upon_outcome_in_weeks", "required", "min=0"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() missing %q: %s", part, s)
		}
	}
}
