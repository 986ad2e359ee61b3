package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medilog/medilog-api/internal/infrastructure/db/naming"
)

const counterCollection = "counters"

// sequences allocates monotonically increasing int64 ids from counter
// documents, one per entity. Both the counters collection and the sequence
// document ids are environment-prefixed.
type sequences struct {
	coll  *mongo.Collection
	names *naming.Resolver
}

func newSequences(db *mongo.Database, names *naming.Resolver) *sequences {
	return &sequences{
		coll:  db.Collection(names.PhysicalName(counterCollection)),
		names: names,
	}
}

// next atomically increments and returns the named sequence, creating it
// at 1 on first use.
func (s *sequences) next(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": s.names.PhysicalName(name)},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return counter.Seq, nil
}
