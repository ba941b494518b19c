package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewMenuTemplatesDAO(db *mongo.Database, logger *zap.Logger) *MenuTemplatesDAO {
	return &MenuTemplatesDAO{
		collection: db.Collection(CollectionMenuTemplates),
		logger:     logger.Named("MenuTemplatesDAO"),
	}
}

// MenuTemplatesDAO stores restorable copies of menu items, keyed by the
// sanitized uppercase dish name.
type MenuTemplatesDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *MenuTemplatesDAO) Upsert(ctx context.Context, tpl *models.MenuTemplate) error {
	filter := bson.M{fields.FieldObjectId: tpl.ID}
	update := bson.M{
		"$set": bson.M{
			fields.FieldName:         tpl.Name,
			fields.FieldItemCategory: tpl.Category,
			fields.FieldItemPrice:    tpl.Price,
			fields.FieldUpdatedAt:    time.Now(),
		},
		"$setOnInsert": bson.M{
			fields.FieldCreatedAt: time.Now(),
		},
	}
	_, err := d.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		d.logger.Error("Upsert: UpdateOne failed", zap.Error(err), zap.String("templateID", tpl.ID))
	}
	return err
}

// Delete removes a template. Missing templates are not an error: deleting an
// item whose template was already gone must still succeed.
func (d *MenuTemplatesDAO) Delete(ctx context.Context, id string) error {
	_, err := d.collection.DeleteOne(ctx, bson.M{fields.FieldObjectId: id})
	if err != nil {
		d.logger.Error("Delete: DeleteOne failed", zap.Error(err), zap.String("templateID", id))
	}
	return err
}

func (d *MenuTemplatesDAO) List(ctx context.Context) ([]*models.MenuTemplate, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: fields.FieldName, Value: 1}})
	cursor, err := d.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		d.logger.Error("List: Find failed", zap.Error(err))
		return nil, err
	}
	templates := make([]*models.MenuTemplate, 0)
	if err := cursor.All(ctx, &templates); err != nil {
		d.logger.Error("List: cursor.All failed", zap.Error(err))
		return nil, err
	}
	return templates, nil
}
