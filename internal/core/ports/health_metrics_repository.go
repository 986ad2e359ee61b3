package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

// HealthMetricsRepository persists one record per (user, date) pair.
// FindByUserAndDate returns (nil, nil) when no record exists for the pair —
// absence is a normal outcome, not an error.
type HealthMetricsRepository interface {
	Create(ctx context.Context, metrics *domain.HealthMetrics) (*domain.HealthMetrics, error)
	Update(ctx context.Context, metrics *domain.HealthMetrics) error
	FindByUserAndDate(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error)
}
