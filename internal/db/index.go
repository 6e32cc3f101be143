package db

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SortOrder is the direction of one index key.
type SortOrder int32

const (
	// Asc orders the key ascending.
	Asc SortOrder = 1
	// Desc orders the key descending.
	Desc SortOrder = -1
)

// IndexKey is one (field, direction) pair of an index.
type IndexKey struct {
	Field string
	Order SortOrder
}

// IndexSpec describes a named secondary index. Key order matters: a compound
// index serves predicates and sorts over prefixes of its key list.
type IndexSpec struct {
	Name string
	Keys []IndexKey
}

// Validate checks the spec structure.
func (s *IndexSpec) Validate() error {
	if s.Name == "" {
		return errors.New("index name is required")
	}
	if len(s.Keys) == 0 {
		return errors.New("at least one index key is required")
	}
	seen := make(map[string]struct{}, len(s.Keys))
	for _, k := range s.Keys {
		if k.Field == "" {
			return errors.New("index key field is required")
		}
		if _, dup := seen[k.Field]; dup {
			return fmt.Errorf("duplicate index key %q", k.Field)
		}
		seen[k.Field] = struct{}{}
	}
	return nil
}

// KeyDocument renders the ordered key document for createIndexes.
func (s *IndexSpec) KeyDocument() bson.D {
	doc := make(bson.D, 0, len(s.Keys))
	for _, k := range s.Keys {
		doc = append(doc, bson.E{Key: k.Field, Value: int32(k.Order)})
	}
	return doc
}

// String returns a debug representation resembling the createIndexes command.
func (s *IndexSpec) String() string {
	parts := []string{"createIndexes", s.Name, "key"}
	for _, k := range s.Keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k.Field, k.Order))
	}
	return strings.Join(parts, " ")
}

// IndexBuilder is a fluent builder for index specs.
type IndexBuilder struct {
	spec IndexSpec
}

// NewIndex starts building an index definition.
func NewIndex(name string) *IndexBuilder {
	return &IndexBuilder{spec: IndexSpec{Name: name}}
}

// Asc appends an ascending key.
func (b *IndexBuilder) Asc(field string) *IndexBuilder {
	b.spec.Keys = append(b.spec.Keys, IndexKey{Field: field, Order: Asc})
	return b
}

// Desc appends a descending key.
func (b *IndexBuilder) Desc(field string) *IndexBuilder {
	b.spec.Keys = append(b.spec.Keys, IndexKey{Field: field, Order: Desc})
	return b
}

// Build validates and returns the index spec.
func (b *IndexBuilder) Build() (*IndexSpec, error) {
	if err := b.spec.Validate(); err != nil {
		return nil, err
	}
	return &b.spec, nil
}

// MustBuild calls Build and panics on error.
func (b *IndexBuilder) MustBuild() *IndexSpec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}
