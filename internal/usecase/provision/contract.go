package provision

import (
	"context"

	"github.com/grazioso-salvare/shelterdex/internal/db"
)

// Admin is the administrative surface the provisioner needs from the store.
type Admin interface {
	ApplyValidator(ctx context.Context, spec *db.ValidatorSpec) error
	EnsureIndex(ctx context.Context, collection string, spec *db.IndexSpec) error
}
