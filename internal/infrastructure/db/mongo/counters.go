package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextSequence atomically increments and returns the integer sequence with the
// given name, creating it at 1 on first use. Both entity ids come from here so
// they behave like database sequences.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}

	err := db.Collection(countersCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}

	return counter.Seq, nil
}
