package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewMenuItemsDAO(db *mongo.Database, logger *zap.Logger) *MenuItemsDAO {
	return &MenuItemsDAO{
		collection: db.Collection(CollectionMenuItems),
		logger:     logger.Named("MenuItemsDAO"),
	}
}

// MenuItemsDAO is the stock ledger over the menu_items collection.
type MenuItemsDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *MenuItemsDAO) Insert(ctx context.Context, item *models.MenuItem) error {
	_, err := d.collection.InsertOne(ctx, item)
	if err != nil {
		d.logger.Error("Insert: InsertOne failed", zap.Error(err), zap.Int64("itemID", item.ID))
	}
	return err
}

func (d *MenuItemsDAO) InsertMany(ctx context.Context, items []*models.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := d.collection.InsertMany(ctx, docs)
	if err != nil {
		d.logger.Error("InsertMany: InsertMany failed", zap.Error(err), zap.Int("count", len(items)))
	}
	return err
}

func (d *MenuItemsDAO) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetByID: FindOne failed", zap.Error(err), zap.Int64("itemID", id))
		return nil, err
	}
	return &item, nil
}

// GetByIDs returns the items that exist; callers detect missing ids by
// comparing against the requested set.
func (d *MenuItemsDAO) GetByIDs(ctx context.Context, ids []int64) ([]*models.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := d.collection.Find(ctx, bson.M{fields.FieldObjectId: bson.M{"$in": ids}})
	if err != nil {
		d.logger.Error("GetByIDs: Find failed", zap.Error(err), zap.Int64s("itemIDs", ids))
		return nil, err
	}
	var items []*models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		d.logger.Error("GetByIDs: cursor.All failed", zap.Error(err), zap.Int64s("itemIDs", ids))
		return nil, err
	}
	return items, nil
}

func (d *MenuItemsDAO) List(ctx context.Context) ([]*models.MenuItem, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: fields.FieldItemCategory, Value: 1},
		{Key: fields.FieldName, Value: 1},
	})
	cursor, err := d.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		d.logger.Error("List: Find failed", zap.Error(err))
		return nil, err
	}
	items := make([]*models.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		d.logger.Error("List: cursor.All failed", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (d *MenuItemsDAO) Update(ctx context.Context, id int64, upd *repository.MenuItemUpdate) error {
	update := bson.M{
		"$set": bson.M{
			fields.FieldName:             upd.Name,
			fields.FieldItemCategory:     upd.Category,
			fields.FieldItemPrice:        upd.Price,
			fields.FieldItemPrepared:     upd.PreparedQuantity,
			fields.FieldItemPreparedDate: upd.PreparedDate,
			fields.FieldItemAvailable:    upd.Available,
			fields.FieldUpdatedAt:        time.Now(),
		},
	}
	res, err := d.collection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		d.logger.Error("Update: UpdateOne failed", zap.Error(err), zap.Int64("itemID", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *MenuItemsDAO) SetAvailability(ctx context.Context, id int64, available bool) error {
	update := bson.M{"$set": bson.M{
		fields.FieldItemAvailable: available,
		fields.FieldUpdatedAt:     time.Now(),
	}}
	res, err := d.collection.UpdateOne(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		d.logger.Error("SetAvailability: UpdateOne failed", zap.Error(err), zap.Int64("itemID", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *MenuItemsDAO) Delete(ctx context.Context, id int64) error {
	res, err := d.collection.DeleteOne(ctx, bson.M{fields.FieldObjectId: id})
	if err != nil {
		d.logger.Error("Delete: DeleteOne failed", zap.Error(err), zap.Int64("itemID", id))
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetRemaining reports prepared minus sold for one item.
func (d *MenuItemsDAO) GetRemaining(ctx context.Context, id int64) (int64, error) {
	item, err := d.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return item.Remaining(), nil
}

// Reserve decrements remaining stock by quantity, failing with
// InsufficientStockError when the ledger cannot cover it. The write is
// guarded on the sold counter it read, so a concurrent mutation shows up as
// ErrStaleWrite instead of a lost update. Meant to run inside a transaction.
func (d *MenuItemsDAO) Reserve(ctx context.Context, id int64, quantity int64, autoDisable bool) error {
	item, err := d.GetByID(ctx, id)
	if err != nil {
		return err
	}

	newSold := item.SoldQuantity + quantity
	if newSold > item.PreparedQuantity {
		return &InsufficientStockError{ItemName: item.Name, Available: item.Remaining()}
	}

	set := bson.M{
		fields.FieldItemSold:  newSold,
		fields.FieldUpdatedAt: time.Now(),
	}
	if autoDisable && item.PreparedQuantity-newSold == 0 {
		set[fields.FieldItemAvailable] = false
	}

	filter := bson.M{
		fields.FieldObjectId: id,
		fields.FieldItemSold: item.SoldQuantity,
	}
	res, err := d.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		d.logger.Error("Reserve: UpdateOne failed", zap.Error(err), zap.Int64("itemID", id))
		return err
	}
	if res.MatchedCount == 0 {
		d.logger.Warn("Reserve: sold counter moved underneath us", zap.Int64("itemID", id))
		return ErrStaleWrite
	}
	return nil
}

// Release is the inverse of Reserve, clamped at zero. It never re-enables
// the available flag: bringing an item back on sale is a manual decision.
func (d *MenuItemsDAO) Release(ctx context.Context, id int64, quantity int64) error {
	item, err := d.GetByID(ctx, id)
	if err != nil {
		return err
	}

	newSold := item.SoldQuantity - quantity
	if newSold < 0 {
		newSold = 0
	}

	filter := bson.M{
		fields.FieldObjectId: id,
		fields.FieldItemSold: item.SoldQuantity,
	}
	update := bson.M{"$set": bson.M{
		fields.FieldItemSold:  newSold,
		fields.FieldUpdatedAt: time.Now(),
	}}
	res, err := d.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		d.logger.Error("Release: UpdateOne failed", zap.Error(err), zap.Int64("itemID", id))
		return err
	}
	if res.MatchedCount == 0 {
		d.logger.Warn("Release: sold counter moved underneath us", zap.Int64("itemID", id))
		return ErrStaleWrite
	}
	return nil
}

// ApplyStockWrites applies a batch of pre-validated ledger mutations. Each
// write is guarded on the sold counter the caller read inside the same
// transaction; a partial match means a concurrent writer slipped in and the
// enclosing transaction must abort.
func (d *MenuItemsDAO) ApplyStockWrites(ctx context.Context, writes []repository.StockWrite) error {
	if len(writes) == 0 {
		return nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(writes))
	for _, w := range writes {
		filter := bson.M{
			fields.FieldObjectId: w.ItemID,
			fields.FieldItemSold: w.ExpectedSold,
		}
		set := bson.M{
			fields.FieldItemSold:  w.NewSold,
			fields.FieldUpdatedAt: now,
		}
		if w.Disable {
			set[fields.FieldItemAvailable] = false
		}
		models = append(models, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(bson.M{"$set": set}))
	}

	bulkOptions := options.BulkWrite().SetOrdered(true)
	res, err := d.collection.BulkWrite(ctx, models, bulkOptions)
	if err != nil {
		d.logger.Error("ApplyStockWrites: BulkWrite failed", zap.Error(err), zap.Int("count", len(writes)))
		return err
	}
	if res.MatchedCount != int64(len(writes)) {
		d.logger.Warn("ApplyStockWrites: guarded write matched fewer items than expected",
			zap.Int64("matched", res.MatchedCount),
			zap.Int("expected", len(writes)))
		return ErrStaleWrite
	}
	return nil
}
