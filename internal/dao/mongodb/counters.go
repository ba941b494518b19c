package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewCountersDAO(db *mongo.Database, logger *zap.Logger) *CountersDAO {
	return &CountersDAO{
		collection: db.Collection(CollectionCounters),
		logger:     logger.Named("CountersDAO"),
	}
}

// CountersDAO issues gapless sequence numbers, one counter document per
// namespace. All issuance happens through a single $inc, so concurrent
// callers can never observe the same value; running it inside a transaction
// additionally rolls the increment back if the transaction aborts, which is
// what keeps bill numbers free of holes.
type CountersDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NextBlock reserves count consecutive values in the namespace and returns
// the first one. The caller owns [start, start+count-1].
func (d *CountersDAO) NextBlock(ctx context.Context, namespace string, count int64) (int64, error) {
	if count < 1 {
		return 0, fmt.Errorf("block size must be positive, got %d", count)
	}

	filter := bson.M{fields.FieldObjectId: namespace}
	update := bson.M{"$inc": bson.M{fields.FieldCounterValue: count}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.SequenceCounter
	if err := d.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		d.logger.Error("NextBlock: FindOneAndUpdate failed", zap.Error(err), zap.String("namespace", namespace))
		return 0, err
	}

	return counter.CurrentValue - count + 1, nil
}
