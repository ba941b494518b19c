package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

// MenuItemsRepository is the stock ledger: the authoritative per-item
// remaining-stock truth. Reserve and Release are specified as standalone
// check-and-write operations so they can be tested in isolation; the billing
// workflow itself gathers reads first and applies ApplyStockWrites in bulk.
type MenuItemsRepository interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	InsertMany(ctx context.Context, items []*models.MenuItem) error
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.MenuItem, error)
	List(ctx context.Context) ([]*models.MenuItem, error)
	Update(ctx context.Context, id int64, upd *MenuItemUpdate) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error

	GetRemaining(ctx context.Context, id int64) (int64, error)
	Reserve(ctx context.Context, id int64, quantity int64, autoDisable bool) error
	Release(ctx context.Context, id int64, quantity int64) error
	ApplyStockWrites(ctx context.Context, writes []StockWrite) error
}

// MenuTemplatesRepository stores the restorable copies of menu items.
type MenuTemplatesRepository interface {
	Upsert(ctx context.Context, tpl *models.MenuTemplate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.MenuTemplate, error)
}

// BillsRepository is the bill store. Only the billing workflow writes here.
type BillsRepository interface {
	Create(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error)
	List(ctx context.Context, params *ListBillsParams) ([]*models.Bill, int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time, status string) ([]*models.Bill, error)
	MarkCancelled(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// CountersRepository is the sequence generator. NextBlock reserves a
// contiguous range of count values and returns the first of them.
type CountersRepository interface {
	NextBlock(ctx context.Context, namespace string, count int64) (int64, error)
}

// SettingsRepository reads and writes the single configuration document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Put(ctx context.Context, s *models.Settings) error
}

// ActivityLogRepository is the best-effort audit trail.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, params *ListActivityParams) ([]*models.ActivityLog, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
