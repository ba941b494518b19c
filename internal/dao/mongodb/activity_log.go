package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewActivityLogDAO(db *mongo.Database, logger *zap.Logger) *ActivityLogDAO {
	return &ActivityLogDAO{
		collection: db.Collection(CollectionActivityLogs),
		logger:     logger.Named("ActivityLogDAO"),
	}
}

type ActivityLogDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *ActivityLogDAO) Create(ctx context.Context, entry *models.ActivityLog) error {
	_, err := d.collection.InsertOne(ctx, entry)
	if err != nil {
		// We log this error but don't return it to the caller, as activity
		// logging failure should not fail the main business logic.
		d.logger.Error("Create: InsertOne failed", zap.Error(err), zap.String("action", entry.Action))
	}
	return nil
}

func (d *ActivityLogDAO) List(ctx context.Context, params *repository.ListActivityParams) ([]*models.ActivityLog, int64, error) {
	filter := bson.M{}
	if params.Action != "" {
		filter[fields.FieldActivityAction] = params.Action
	}

	total, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("List: CountDocuments failed", zap.Error(err))
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}}).
		SetSkip(int64(params.Offset)).
		SetLimit(int64(params.Limit))
	cursor, err := d.collection.Find(ctx, filter, findOptions)
	if err != nil {
		d.logger.Error("List: Find failed", zap.Error(err))
		return nil, 0, err
	}
	entries := make([]*models.ActivityLog, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		d.logger.Error("List: cursor.All failed", zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}

// DeleteOlderThan prunes entries created before the cutoff and reports how
// many were removed.
func (d *ActivityLogDAO) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.collection.DeleteMany(ctx, bson.M{
		fields.FieldCreatedAt: bson.M{"$lt": cutoff},
	})
	if err != nil {
		d.logger.Error("DeleteOlderThan: DeleteMany failed", zap.Error(err), zap.Time("cutoff", cutoff))
		return 0, err
	}
	return res.DeletedCount, nil
}
