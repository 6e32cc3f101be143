package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Writer is the insert surface the seeder consumes.
type Writer interface {
	InsertOne(ctx context.Context, collection string, doc any) error
}

// Seeder loads outcome documents into the collection, used to prime a fresh
// environment with sample data after provisioning.
type Seeder struct {
	writer     Writer
	collection string
	logger     *zap.Logger
}

// NewSeeder creates a seeder for the outcomes collection.
func NewSeeder(writer Writer, collection string, logger *zap.Logger) *Seeder {
	return &Seeder{writer: writer, collection: collection, logger: logger}
}

// LoadDocuments decodes a JSON array of documents from r.
func LoadDocuments(r io.Reader) ([]map[string]any, error) {
	var docs []map[string]any
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode seed documents: %w", err)
	}
	return docs, nil
}

// Seed inserts the documents in order. The first engine error aborts the run
// and reports how many documents made it in; those stay in place.
func (s *Seeder) Seed(ctx context.Context, docs []map[string]any) (int, error) {
	for i, doc := range docs {
		if err := s.writer.InsertOne(ctx, s.collection, doc); err != nil {
			return i, fmt.Errorf("insert document %d: %w", i, err)
		}
	}
	s.logger.Info("Seeded documents",
		zap.String("collection", s.collection),
		zap.Int("count", len(docs)),
	)
	return len(docs), nil
}
