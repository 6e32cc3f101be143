package provision

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/db"
	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// Service provisions one collection: it applies the schema validator, then
// creates the secondary indexes, strictly in sequence. There is no retry and
// no fallback: the first engine error aborts the run and travels up verbatim.
type Service struct {
	admin     Admin
	validator *db.ValidatorSpec
	indexes   []*db.IndexSpec
	logger    *zap.Logger
}

// New creates a provisioner for the outcomes collection.
func New(admin Admin, collection string, logger *zap.Logger) *Service {
	return &Service{
		admin:     admin,
		validator: ShelterValidator(collection),
		indexes:   ShelterIndexes(),
		logger:    logger,
	}
}

// Specs exposes the declarative payload, used by the setup CLI's dry-run.
func (s *Service) Specs() (*db.ValidatorSpec, []*db.IndexSpec) {
	return s.validator, s.indexes
}

// Apply issues the administrative calls. Re-running against an already
// provisioned collection is a no-op: the validator is replaced with an
// identical one and identical index definitions are accepted by the engine.
func (s *Service) Apply(ctx context.Context) error {
	s.logger.Info("Applying validator",
		zap.String("collection", s.validator.Collection),
		zap.String("level", string(s.validator.Level)),
	)
	if err := s.admin.ApplyValidator(ctx, s.validator); err != nil {
		return fmt.Errorf("apply validator on %s: %w", s.validator.Collection, domainErr(err))
	}

	for _, idx := range s.indexes {
		s.logger.Info("Ensuring index",
			zap.String("collection", s.validator.Collection),
			zap.String("index", idx.Name),
		)
		if err := s.admin.EnsureIndex(ctx, s.validator.Collection, idx); err != nil {
			return fmt.Errorf("ensure index %s: %w", idx.Name, domainErr(err))
		}
	}

	return nil
}

// domainErr maps engine sentinels onto domain errors so nothing above the
// usecase layer depends on the db package.
func domainErr(err error) error {
	switch {
	case errors.Is(err, db.ErrCollectionNotFound):
		return domain.ErrNotFound
	case errors.Is(err, db.ErrInvalidValidator):
		return domain.ErrInvalidSchema
	case errors.Is(err, db.ErrIndexConflict):
		return domain.ErrIndexConflict
	default:
		return err
	}
}
