package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

// HealthMetricsService reads and upserts per-day measurement records.
type HealthMetricsService struct {
	metrics ports.HealthMetricsRepository
	users   ports.UserRepository
	tx      ports.TransactionManager
	logger  zerolog.Logger
}

func NewHealthMetricsService(metrics ports.HealthMetricsRepository, users ports.UserRepository, tx ports.TransactionManager, logger zerolog.Logger) *HealthMetricsService {
	return &HealthMetricsService{metrics: metrics, users: users, tx: tx, logger: logger}
}

// GetByDate returns the user's record for the given date, or (nil, nil)
// when none exists. A missing record is a normal outcome; a missing user
// is ErrUserNotFound.
func (s *HealthMetricsService) GetByDate(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	record, err := s.metrics.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if record == nil {
		s.logger.Debug().Int64("user_id", userID).Str("date", date).Msg("no health metrics for date")
	}
	return record, nil
}

// SaveOrUpdate writes the caller's record for the current date. The target
// date is always the server's "today" — never caller-supplied. The first
// save of the day creates the record; later saves overwrite every
// measurement field in place and refresh updatedAt.
func (s *HealthMetricsService) SaveOrUpdate(ctx context.Context, userID int64, input ports.HealthMetricsInput) (*domain.HealthMetrics, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	today := domain.Today()
	var saved *domain.HealthMetrics

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.metrics.FindByUserAndDate(ctx, userID, today)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if existing != nil {
			applyInput(existing, input)
			existing.UpdatedAt = now
			if err := s.metrics.Update(ctx, existing); err != nil {
				return err
			}
			saved = existing
			s.logger.Debug().Int64("record_id", existing.ID).Msg("health metrics updated")
			return nil
		}

		record := &domain.HealthMetrics{
			UserID:    userID,
			Date:      today,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyInput(record, input)
		saved, err = s.metrics.Create(ctx, record)
		if err == nil {
			s.logger.Debug().Int64("record_id", saved.ID).Msg("health metrics created")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Str("date", today).Msg("health metrics saved")
	return saved, nil
}

func applyInput(m *domain.HealthMetrics, input ports.HealthMetricsInput) {
	m.WaterIntake = input.WaterIntake
	m.SleepDuration = input.SleepDuration
	m.Steps = input.Steps
	m.HeartRate = input.HeartRate
	m.SystolicBP = input.SystolicBP
	m.DiastolicBP = input.DiastolicBP
	m.Weight = input.Weight
	m.Mood = input.Mood
}
