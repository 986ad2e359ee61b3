package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medilog/medilog-api/internal/infrastructure/db/naming"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB
// connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. A default timeout
// is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the uniqueness constraints the domain relies on:
// one account per email, one metrics record per (user, date), one flag per
// name. Collection names go through the environment-aware resolver.
func EnsureIndexes(ctx context.Context, db *mongo.Database, names *naming.Resolver) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{userCollection, bson.D{{Key: "email", Value: 1}}},
		{healthMetricsCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{featureFlagCollection, bson.D{{Key: "name", Value: 1}}},
	}

	for _, idx := range indexes {
		coll := db.Collection(names.PhysicalName(idx.collection))
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys, Options: unique})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
