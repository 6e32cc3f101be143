package animal

import (
	"context"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

// Repository defines the read contract for animal listings.
type Repository interface {
	List(ctx context.Context, c domain.Criteria, skip, limit int64) ([]domain.Animal, error)
	Count(ctx context.Context, c domain.Criteria) (int64, error)
}

// Stats defines the aggregation contract. The cached decorator and the plain
// repository both satisfy it.
type Stats interface {
	BreedCounts(ctx context.Context, c domain.Criteria) ([]domain.BreedCount, error)
	SexCounts(ctx context.Context, c domain.Criteria) ([]domain.SexCount, error)
	AgeSummary(ctx context.Context, c domain.Criteria) (*domain.AgeSummary, error)
}
