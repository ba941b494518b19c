package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewSettingsDAO(db *mongo.Database, logger *zap.Logger) *SettingsDAO {
	return &SettingsDAO{
		collection: db.Collection(CollectionSettings),
		logger:     logger.Named("SettingsDAO"),
	}
}

// SettingsDAO reads and writes the single settings/config document.
type SettingsDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *SettingsDAO) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: SettingsDocID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("Get: FindOne failed", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (d *SettingsDAO) Put(ctx context.Context, s *models.Settings) error {
	filter := bson.M{fields.FieldObjectId: SettingsDocID}
	_, err := d.collection.ReplaceOne(ctx, filter, s, options.Replace().SetUpsert(true))
	if err != nil {
		d.logger.Error("Put: ReplaceOne failed", zap.Error(err))
	}
	return err
}
