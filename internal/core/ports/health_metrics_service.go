package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

// HealthMetricsInput carries the measurement fields of a save request.
// Nil pointers clear the corresponding stored value.
type HealthMetricsInput struct {
	WaterIntake   *int
	SleepDuration *int
	Steps         *int
	HeartRate     *int
	SystolicBP    *int
	DiastolicBP   *int
	Weight        *float64
	Mood          string
}

type HealthMetricsService interface {
	// GetByDate returns (nil, nil) when the user has no record for the date.
	GetByDate(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error)
	// SaveOrUpdate writes the user's record for the current date, creating
	// it on first save and overwriting all fields on subsequent saves.
	SaveOrUpdate(ctx context.Context, userID int64, input HealthMetricsInput) (*domain.HealthMetrics, error)
}
