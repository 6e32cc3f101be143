package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grazioso-salvare/shelterdex/internal/db"
)

// ApplyValidator replaces the collection's validator via collMod.
// Later calls with the same target supersede earlier ones; pre-existing
// documents are only re-checked under the strict level.
func (s *Store) ApplyValidator(ctx context.Context, spec *db.ValidatorSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	cmd := bson.D{
		{Key: "collMod", Value: spec.Collection},
		{Key: "validator", Value: bson.M{"$jsonSchema": spec.Schema()}},
		{Key: "validationLevel", Value: string(spec.Level)},
		{Key: "validationAction", Value: spec.Action},
	}

	if err := s.db.RunCommand(ctx, cmd).Err(); err != nil {
		switch {
		case hasServerCode(err, codeNamespaceNotFound):
			return db.ErrCollectionNotFound
		case hasServerCode(err, codeFailedToParse, codeTypeMismatch, codeInvalidOptions):
			return db.ErrInvalidValidator
		}
		return &db.Error{Op: db.OpCollMod, Err: err}
	}
	return nil
}

// EnsureIndex creates the named index via createIndexes. The engine treats an
// identical re-issue as a no-op; a name collision with a different definition
// surfaces as ErrIndexConflict.
func (s *Store) EnsureIndex(ctx context.Context, collection string, spec *db.IndexSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	model := mongo.IndexModel{
		Keys:    spec.KeyDocument(),
		Options: options.Index().SetName(spec.Name),
	}

	if _, err := s.collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		if hasServerCode(err, codeIndexOptionsConflict, codeIndexKeySpecsConflict) {
			return db.ErrIndexConflict
		}
		if hasServerCode(err, codeNamespaceNotFound) {
			return db.ErrCollectionNotFound
		}
		return &db.Error{Op: db.OpCreateIndexes, Err: err}
	}
	return nil
}
