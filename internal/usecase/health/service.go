package health

import (
	"context"

	"go.uber.org/zap"
)

// Pinger checks one backend's connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the health report of the service and its backends.
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

// Service checks backend health. The cache pinger is optional: a degraded
// cache does not make the service unhealthy.
type Service struct {
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

// New creates a health service. cache may be nil when caching is disabled.
func New(db Pinger, cache Pinger, logger *zap.Logger) *Service {
	return &Service{db: db, cache: cache, logger: logger}
}

// Check pings the backends. Healthy reports true only when the database
// responds; the cache state is informational.
func (s *Service) Check(ctx context.Context) (Status, bool) {
	st := Status{Status: "ok", Database: "ok"}
	healthy := true

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("Database health check failed", zap.Error(err))
		st.Status = "degraded"
		st.Database = "unreachable"
		healthy = false
	}

	if s.cache != nil {
		st.Cache = "ok"
		if err := s.cache.Ping(ctx); err != nil {
			s.logger.Warn("Cache health check failed", zap.Error(err))
			st.Cache = "unreachable"
			if st.Status == "ok" {
				st.Status = "degraded"
			}
		}
	}

	return st, healthy
}
