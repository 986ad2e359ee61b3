package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

// FeatureFlagInput carries the mutable fields of a feature flag. The
// account list replaces the stored one wholesale on update.
type FeatureFlagInput struct {
	Name              string
	EnabledAccountIDs []int64
	Description       string
}

type FeatureFlagService interface {
	Create(ctx context.Context, input FeatureFlagInput) (*domain.FeatureFlag, error)
	Update(ctx context.Context, id int64, input FeatureFlagInput) (*domain.FeatureFlag, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]domain.FeatureFlag, error)
	GetByID(ctx context.Context, id int64) (*domain.FeatureFlag, error)
	ListForAccount(ctx context.Context, accountID int64) ([]domain.FeatureFlag, error)
	// IsEnabledFor treats an unknown flag name as "not enabled".
	IsEnabledFor(ctx context.Context, name string, accountID int64) (bool, error)
}
