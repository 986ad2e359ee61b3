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

const featureFlagCollection = "feature_flags"

const featureFlagSequence = "feature_flag_id_seq"

type FeatureFlagRepository struct {
	coll *mongo.Collection
	seq  *sequences
}

func NewFeatureFlagRepository(db *mongo.Database, names *naming.Resolver) *FeatureFlagRepository {
	return &FeatureFlagRepository{
		coll: db.Collection(names.PhysicalName(featureFlagCollection)),
		seq:  newSequences(db, names),
	}
}

type featureFlagDoc struct {
	ID                int64     `bson:"_id"`
	Name              string    `bson:"name"`
	EnabledAccountIDs []int64   `bson:"enabled_account_ids"`
	Description       string    `bson:"description"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func fromFlag(f *domain.FeatureFlag) featureFlagDoc {
	return featureFlagDoc{
		ID:                f.ID,
		Name:              f.Name,
		EnabledAccountIDs: f.EnabledAccountIDs,
		Description:       f.Description,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

func (d featureFlagDoc) toDomain() domain.FeatureFlag {
	return domain.FeatureFlag{
		ID:                d.ID,
		Name:              d.Name,
		EnabledAccountIDs: d.EnabledAccountIDs,
		Description:       d.Description,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *FeatureFlagRepository) Create(ctx context.Context, flag *domain.FeatureFlag) (*domain.FeatureFlag, error) {
	id, err := r.seq.next(ctx, featureFlagSequence)
	if err != nil {
		return nil, err
	}

	created := *flag
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, fromFlag(&created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFlagNameExists
		}
		return nil, fmt.Errorf("insert feature flag: %w", err)
	}
	return &created, nil
}

func (r *FeatureFlagRepository) Update(ctx context.Context, flag *domain.FeatureFlag) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": flag.ID}, fromFlag(flag))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFlagNameExists
		}
		return fmt.Errorf("update feature flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFlagNotFound
	}
	return nil
}

func (r *FeatureFlagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete feature flag: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFlagNotFound
	}
	return nil
}

func (r *FeatureFlagRepository) FindByID(ctx context.Context, id int64) (*domain.FeatureFlag, error) {
	var doc featureFlagDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFlagNotFound
		}
		return nil, fmt.Errorf("find feature flag by id: %w", err)
	}
	flag := doc.toDomain()
	return &flag, nil
}

func (r *FeatureFlagRepository) FindByName(ctx context.Context, name string) (*domain.FeatureFlag, error) {
	var doc featureFlagDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFlagNotFound
		}
		return nil, fmt.Errorf("find feature flag by name: %w", err)
	}
	flag := doc.toDomain()
	return &flag, nil
}

func (r *FeatureFlagRepository) FindAll(ctx context.Context) ([]domain.FeatureFlag, error) {
	return r.find(ctx, bson.M{})
}

func (r *FeatureFlagRepository) FindByEnabledAccountID(ctx context.Context, accountID int64) ([]domain.FeatureFlag, error) {
	return r.find(ctx, bson.M{"enabled_account_ids": accountID})
}

func (r *FeatureFlagRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("count feature flags by name: %w", err)
	}
	return n > 0, nil
}

func (r *FeatureFlagRepository) find(ctx context.Context, filter bson.M) ([]domain.FeatureFlag, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find feature flags: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []featureFlagDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode feature flags: %w", err)
	}

	flags := make([]domain.FeatureFlag, 0, len(docs))
	for _, doc := range docs {
		flags = append(flags, doc.toDomain())
	}
	return flags, nil
}
