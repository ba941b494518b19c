package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/fields"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func NewBillsDAO(db *mongo.Database, logger *zap.Logger) *BillsDAO {
	return &BillsDAO{
		collection: db.Collection(CollectionOrders),
		logger:     logger.Named("BillsDAO"),
	}
}

// BillsDAO persists committed bills in the orders collection.
type BillsDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *BillsDAO) Create(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error) {
	res, err := d.collection.InsertOne(ctx, bill)
	if err != nil {
		d.logger.Error("Create: InsertOne failed", zap.Error(err), zap.String("billNumber", bill.BillNumber))
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (d *BillsDAO) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	var bill models.Bill
	err := d.collection.FindOne(ctx, bson.M{fields.FieldObjectId: id}).Decode(&bill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		d.logger.Error("GetByID: FindOne failed", zap.Error(err), zap.Stringer("billID", id))
		return nil, err
	}
	return &bill, nil
}

// List returns the order history newest first, optionally filtered by status,
// together with the total match count for pagination.
func (d *BillsDAO) List(ctx context.Context, params *repository.ListBillsParams) ([]*models.Bill, int64, error) {
	filter := bson.M{}
	if params.Status != "" {
		filter[fields.FieldStatus] = params.Status
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
	bills := make([]*models.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		d.logger.Error("List: cursor.All failed", zap.Error(err))
		return nil, 0, err
	}
	return bills, total, nil
}

// ListByDateRange feeds the analytics aggregator. Results are read-only
// snapshots; the aggregator never mutates them.
func (d *BillsDAO) ListByDateRange(ctx context.Context, from, to time.Time, status string) ([]*models.Bill, error) {
	filter := bson.M{
		fields.FieldCreatedAt: bson.M{"$gte": from, "$lte": to},
	}
	if status != "" {
		filter[fields.FieldStatus] = status
	}

	cursor, err := d.collection.Find(ctx, filter)
	if err != nil {
		d.logger.Error("ListByDateRange: Find failed", zap.Error(err))
		return nil, err
	}
	bills := make([]*models.Bill, 0)
	if err := cursor.All(ctx, &bills); err != nil {
		d.logger.Error("ListByDateRange: cursor.All failed", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

// MarkCancelled flips a Paid bill to Cancelled. The filter includes the Paid
// status so the transition happens at most once even under concurrent
// cancellations; a zero match on an existing bill means it was already
// cancelled.
func (d *BillsDAO) MarkCancelled(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	filter := bson.M{
		fields.FieldObjectId: id,
		fields.FieldStatus:   constants.BillStatusPaid.String(),
	}
	update := bson.M{"$set": bson.M{
		fields.FieldStatus:          constants.BillStatusCancelled.String(),
		fields.FieldBillCancelledAt: at,
	}}

	res, err := d.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		d.logger.Error("MarkCancelled: UpdateOne failed", zap.Error(err), zap.Stringer("billID", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
