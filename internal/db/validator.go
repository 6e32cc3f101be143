package db

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidationLevel controls which documents the engine checks against the schema.
type ValidationLevel string

const (
	// LevelModerate validates inserts and updates only; pre-existing
	// non-conforming documents are left untouched.
	LevelModerate ValidationLevel = "moderate"
	// LevelStrict validates every write, including updates to legacy documents.
	LevelStrict ValidationLevel = "strict"
)

// numericTypes are the BSON type aliases accepted for numeric fields.
var numericTypes = []string{"double", "int", "long", "decimal"}

// FieldRule is one field constraint inside a validator.
type FieldRule struct {
	Name     string
	Types    []string // BSON type aliases
	Min      *float64
	Max      *float64
	Required bool
}

// ValidatorSpec describes a $jsonSchema validator for one collection.
// It is declarative: nothing is checked locally beyond structural sanity,
// the engine owns the semantics.
type ValidatorSpec struct {
	Collection string
	Rules      []FieldRule
	Level      ValidationLevel
	Action     string
}

// Validate checks the spec structure before it is sent to the engine.
func (s *ValidatorSpec) Validate() error {
	if s.Collection == "" {
		return errors.New("collection name is required")
	}
	required := 0
	seen := make(map[string]struct{}, len(s.Rules))
	for i := range s.Rules {
		r := &s.Rules[i]
		if r.Name == "" {
			return errors.New("field name is required")
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("duplicate field rule %q", r.Name)
		}
		seen[r.Name] = struct{}{}
		if len(r.Types) == 0 {
			return fmt.Errorf("field %q declares no allowed types", r.Name)
		}
		if r.Required {
			required++
		}
	}
	if required == 0 {
		return errors.New("at least one required field is needed")
	}
	return nil
}

// Schema renders the $jsonSchema document for this spec.
func (s *ValidatorSpec) Schema() bson.M {
	props := bson.M{}
	var required []string
	for i := range s.Rules {
		r := &s.Rules[i]
		p := bson.M{}
		if len(r.Types) == 1 {
			p["bsonType"] = r.Types[0]
		} else {
			p["bsonType"] = r.Types
		}
		if r.Min != nil {
			p["minimum"] = *r.Min
		}
		if r.Max != nil {
			p["maximum"] = *r.Max
		}
		props[r.Name] = p
		if r.Required {
			required = append(required, r.Name)
		}
	}

	schema := bson.M{
		"bsonType":   "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// String returns a debug representation resembling the collMod command.
func (s *ValidatorSpec) String() string {
	parts := []string{"collMod", s.Collection, "validationLevel", string(s.Level)}
	for i := range s.Rules {
		r := &s.Rules[i]
		f := r.Name + ":" + strings.Join(r.Types, "|")
		if r.Required {
			f += " required"
		}
		if r.Min != nil {
			f += fmt.Sprintf(" min=%g", *r.Min)
		}
		if r.Max != nil {
			f += fmt.Sprintf(" max=%g", *r.Max)
		}
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}

// Bound constrains the numeric range of a field rule.
type Bound func(*FieldRule)

// Min sets the inclusive lower bound.
func Min(v float64) Bound {
	return func(r *FieldRule) { r.Min = &v }
}

// Max sets the inclusive upper bound.
func Max(v float64) Bound {
	return func(r *FieldRule) { r.Max = &v }
}

// Range sets both inclusive bounds.
func Range(lo, hi float64) Bound {
	return func(r *FieldRule) {
		r.Min = &lo
		r.Max = &hi
	}
}

// ValidatorBuilder is a fluent builder for validator specs.
type ValidatorBuilder struct {
	spec ValidatorSpec
}

// NewValidator starts building a validator for the given collection.
// The default enforcement level is moderate with action "error".
func NewValidator(collection string) *ValidatorBuilder {
	return &ValidatorBuilder{
		spec: ValidatorSpec{
			Collection: collection,
			Level:      LevelModerate,
			Action:     "error",
		},
	}
}

// RequireString adds a required string field.
func (b *ValidatorBuilder) RequireString(name string) *ValidatorBuilder {
	b.spec.Rules = append(b.spec.Rules, FieldRule{
		Name:     name,
		Types:    []string{"string"},
		Required: true,
	})
	return b
}

// RequireNumeric adds a required numeric field with optional bounds.
func (b *ValidatorBuilder) RequireNumeric(name string, bounds ...Bound) *ValidatorBuilder {
	return b.numeric(name, true, bounds)
}

// OptionalNumeric adds a numeric field validated only when present.
func (b *ValidatorBuilder) OptionalNumeric(name string, bounds ...Bound) *ValidatorBuilder {
	return b.numeric(name, false, bounds)
}

func (b *ValidatorBuilder) numeric(name string, required bool, bounds []Bound) *ValidatorBuilder {
	r := FieldRule{
		Name:     name,
		Types:    append([]string(nil), numericTypes...),
		Required: required,
	}
	for _, bound := range bounds {
		bound(&r)
	}
	b.spec.Rules = append(b.spec.Rules, r)
	return b
}

// Moderate sets the moderate enforcement level.
func (b *ValidatorBuilder) Moderate() *ValidatorBuilder {
	b.spec.Level = LevelModerate
	return b
}

// Strict sets the strict enforcement level.
func (b *ValidatorBuilder) Strict() *ValidatorBuilder {
	b.spec.Level = LevelStrict
	return b
}

// Build validates and returns the validator spec.
func (b *ValidatorBuilder) Build() (*ValidatorSpec, error) {
	if err := b.spec.Validate(); err != nil {
		return nil, err
	}
	return &b.spec, nil
}

// MustBuild calls Build and panics on error.
func (b *ValidatorBuilder) MustBuild() *ValidatorSpec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}
