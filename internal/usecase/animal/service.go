package animal

import (
	"context"
	"fmt"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
	"github.com/grazioso-salvare/shelterdex/internal/usecase/ranking"
)

// Service handles animal listings and dashboard aggregations.
type Service struct {
	repo            Repository
	stats           Stats
	defaultPageSize int
	maxPageSize     int
}

// New creates an animal service.
func New(repo Repository, stats Stats) *Service {
	return &Service{repo: repo, stats: stats, defaultPageSize: 20, maxPageSize: 100}
}

// WithPagination configures page size defaults and caps.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// ListResult is one page of ranked records.
type ListResult struct {
	Filter   domain.FilterType      `json:"filter"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
	Total    int64                  `json:"total"`
	Animals  []ranking.RankedAnimal `json:"animals"`
}

// List returns one page of dogs matching the rescue profile, best matches
// first. An empty filter means "all".
func (s *Service) List(ctx context.Context, rawFilter string, page, pageSize int) (ListResult, error) {
	ft, err := s.parseFilter(rawFilter)
	if err != nil {
		return ListResult{}, err
	}
	crit := domain.CriteriaFor(ft)

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	skip := int64(page-1) * int64(pageSize)

	records, err := s.repo.List(ctx, crit, skip, int64(pageSize))
	if err != nil {
		return ListResult{}, fmt.Errorf("list animals: %w", err)
	}

	total, err := s.repo.Count(ctx, crit)
	if err != nil {
		return ListResult{}, fmt.Errorf("count animals: %w", err)
	}

	return ListResult{
		Filter:   ft,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Animals:  ranking.Rank(records, crit),
	}, nil
}

// BreedStats returns the breed distribution for a rescue profile.
func (s *Service) BreedStats(ctx context.Context, rawFilter string) ([]domain.BreedCount, error) {
	ft, err := s.parseFilter(rawFilter)
	if err != nil {
		return nil, err
	}
	out, err := s.stats.BreedCounts(ctx, domain.CriteriaFor(ft))
	if err != nil {
		return nil, fmt.Errorf("breed stats: %w", err)
	}
	return out, nil
}

// SexStats returns the sex_upon_outcome distribution for a rescue profile.
func (s *Service) SexStats(ctx context.Context, rawFilter string) ([]domain.SexCount, error) {
	ft, err := s.parseFilter(rawFilter)
	if err != nil {
		return nil, err
	}
	out, err := s.stats.SexCounts(ctx, domain.CriteriaFor(ft))
	if err != nil {
		return nil, fmt.Errorf("sex stats: %w", err)
	}
	return out, nil
}

// AgeStats returns min/max/avg ages for a rescue profile, or nil when the
// filtered set has no numeric ages.
func (s *Service) AgeStats(ctx context.Context, rawFilter string) (*domain.AgeSummary, error) {
	ft, err := s.parseFilter(rawFilter)
	if err != nil {
		return nil, err
	}
	out, err := s.stats.AgeSummary(ctx, domain.CriteriaFor(ft))
	if err != nil {
		return nil, fmt.Errorf("age stats: %w", err)
	}
	return out, nil
}

// RescueTypes lists the accepted filter values.
func (s *Service) RescueTypes() []domain.FilterType {
	return append([]domain.FilterType(nil), domain.FilterTypes...)
}

func (s *Service) parseFilter(raw string) (domain.FilterType, error) {
	if raw == "" {
		return domain.FilterAll, nil
	}
	return domain.ParseFilterType(raw)
}
