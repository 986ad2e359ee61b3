package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/infrastructure/db/naming"
)

const healthMetricsCollection = "everyday_health_metrics"

const healthMetricsSequence = "health_metrics_id_seq"

type HealthMetricsRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewHealthMetricsRepository(db *mongo.Database, names *naming.Resolver) *HealthMetricsRepository {
	return &HealthMetricsRepository{
		coll: db.Collection(names.PhysicalName(healthMetricsCollection)),
		seq:  newSequences(db, names),
	}
}

type healthMetricsDoc struct {
	ID            int64     `bson:"_id"`
	UserID        int64     `bson:"user_id"`
	Date          string    `bson:"date"`
	WaterIntake   *int      `bson:"water_intake"`
	SleepDuration *int      `bson:"sleep_duration"`
	Steps         *int      `bson:"steps"`
	HeartRate     *int      `bson:"heart_rate"`
	SystolicBP    *int      `bson:"systolic_bp"`
	DiastolicBP   *int      `bson:"diastolic_bp"`
	Weight        *float64  `bson:"weight"`
	Mood          string    `bson:"mood"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func fromMetrics(m *domain.HealthMetrics) healthMetricsDoc {
	return healthMetricsDoc{
		ID:            m.ID,
		UserID:        m.UserID,
		Date:          m.Date,
		WaterIntake:   m.WaterIntake,
		SleepDuration: m.SleepDuration,
		Steps:         m.Steps,
		HeartRate:     m.HeartRate,
		SystolicBP:    m.SystolicBP,
		DiastolicBP:   m.DiastolicBP,
		Weight:        m.Weight,
		Mood:          m.Mood,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (d healthMetricsDoc) toDomain() *domain.HealthMetrics {
	return &domain.HealthMetrics{
		ID:            d.ID,
		UserID:        d.UserID,
		Date:          d.Date,
		WaterIntake:   d.WaterIntake,
		SleepDuration: d.SleepDuration,
		Steps:         d.Steps,
		HeartRate:     d.HeartRate,
		SystolicBP:    d.SystolicBP,
		DiastolicBP:   d.DiastolicBP,
		Weight:        d.Weight,
		Mood:          d.Mood,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *HealthMetricsRepository) Create(ctx context.Context, metrics *domain.HealthMetrics) (*domain.HealthMetrics, error) {
	id, err := r.seq.next(ctx, healthMetricsSequence)
	if err != nil {
		return nil, err
	}

	created := *metrics
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, fromMetrics(&created)); err != nil {
		return nil, fmt.Errorf("insert health metrics: %w", err)
	}
	return &created, nil
}

func (r *HealthMetricsRepository) Update(ctx context.Context, metrics *domain.HealthMetrics) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": metrics.ID}, fromMetrics(metrics))
	if err != nil {
		return fmt.Errorf("update health metrics: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update health metrics: record %d not found", metrics.ID)
	}
	return nil
}

// FindByUserAndDate returns (nil, nil) when no record exists for the pair.
func (r *HealthMetricsRepository) FindByUserAndDate(ctx context.Context, userID int64, date string) (*domain.HealthMetrics, error) {
	var doc healthMetricsDoc
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find health metrics: %w", err)
	}
	return doc.toDomain(), nil
}
