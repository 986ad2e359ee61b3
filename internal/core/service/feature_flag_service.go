package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

// FeatureFlagService implements flag CRUD and account membership checks.
type FeatureFlagService struct {
	flags  ports.FeatureFlagRepository
	tx     ports.TransactionManager
	logger zerolog.Logger
}

func NewFeatureFlagService(flags ports.FeatureFlagRepository, tx ports.TransactionManager, logger zerolog.Logger) *FeatureFlagService {
	return &FeatureFlagService{flags: flags, tx: tx, logger: logger}
}

func (s *FeatureFlagService) Create(ctx context.Context, input ports.FeatureFlagInput) (*domain.FeatureFlag, error) {
	s.logger.Info().Str("flag", input.Name).Msg("creating feature flag")

	var created *domain.FeatureFlag
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.flags.ExistsByName(ctx, input.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrFlagNameExists
		}

		now := time.Now().UTC()
		created, err = s.flags.Create(ctx, &domain.FeatureFlag{
			Name:              input.Name,
			EnabledAccountIDs: input.EnabledAccountIDs,
			Description:       input.Description,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("flag_id", created.ID).Msg("feature flag created")
	return created, nil
}

func (s *FeatureFlagService) Update(ctx context.Context, id int64, input ports.FeatureFlagInput) (*domain.FeatureFlag, error) {
	s.logger.Info().Int64("flag_id", id).Msg("updating feature flag")

	var updated *domain.FeatureFlag
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		flag, err := s.flags.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// Renaming onto another flag's name is a conflict.
		if flag.Name != input.Name {
			exists, err := s.flags.ExistsByName(ctx, input.Name)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrFlagNameExists
			}
		}

		flag.Name = input.Name
		flag.EnabledAccountIDs = input.EnabledAccountIDs
		flag.Description = input.Description
		flag.UpdatedAt = time.Now().UTC()

		if err := s.flags.Update(ctx, flag); err != nil {
			return err
		}
		updated = flag
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FeatureFlagService) Delete(ctx context.Context, id int64) error {
	s.logger.Info().Int64("flag_id", id).Msg("deleting feature flag")
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.flags.FindByID(ctx, id); err != nil {
			return err
		}
		return s.flags.Delete(ctx, id)
	})
}

func (s *FeatureFlagService) GetAll(ctx context.Context) ([]domain.FeatureFlag, error) {
	return s.flags.FindAll(ctx)
}

func (s *FeatureFlagService) GetByID(ctx context.Context, id int64) (*domain.FeatureFlag, error) {
	return s.flags.FindByID(ctx, id)
}

func (s *FeatureFlagService) ListForAccount(ctx context.Context, accountID int64) ([]domain.FeatureFlag, error) {
	return s.flags.FindByEnabledAccountID(ctx, accountID)
}

// IsEnabledFor is a pure lookup: an unknown flag name means "not enabled",
// never an error.
func (s *FeatureFlagService) IsEnabledFor(ctx context.Context, name string, accountID int64) (bool, error) {
	flag, err := s.flags.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrFlagNotFound) {
			return false, nil
		}
		return false, err
	}
	return flag.IsEnabledFor(accountID), nil
}
