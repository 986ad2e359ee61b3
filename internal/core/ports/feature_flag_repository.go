package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

// FeatureFlagRepository persists feature flags. Names are globally unique.
type FeatureFlagRepository interface {
	Create(ctx context.Context, flag *domain.FeatureFlag) (*domain.FeatureFlag, error)
	Update(ctx context.Context, flag *domain.FeatureFlag) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.FeatureFlag, error)
	FindByName(ctx context.Context, name string) (*domain.FeatureFlag, error)
	FindAll(ctx context.Context) ([]domain.FeatureFlag, error)
	FindByEnabledAccountID(ctx context.Context, accountID int64) ([]domain.FeatureFlag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
