package logic

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/db"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
	"github.com/Mukunt07/subramaniya-mess/internal/mq/noop"
)

// passthroughTxManager runs the callback directly, like the dev-mode manager.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTransaction(ctx context.Context, fn func(sessCtx context.Context) (interface{}, error)) (interface{}, error) {
	return fn(ctx)
}

var _ db.TransactionManager = passthroughTxManager{}

// newTestRecorder returns a recorder whose sinks never fail the test.
func newTestRecorder(activityRepo repository.ActivityLogRepository) *ActivityRecorder {
	return NewActivityRecorder(activityRepo, noop.NewPublisher(), ActivityEventTopic("test.activity"), zap.NewNop())
}

// mockMenuItemsRepository implements repository.MenuItemsRepository using testify/mock.
type mockMenuItemsRepository struct {
	mock.Mock
}

func newMockMenuItemsRepository() *mockMenuItemsRepository {
	return &mockMenuItemsRepository{}
}

func (m *mockMenuItemsRepository) Insert(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) InsertMany(ctx context.Context, items []*models.MenuItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *mockMenuItemsRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *mockMenuItemsRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *mockMenuItemsRepository) Update(ctx context.Context, id int64, upd *repository.MenuItemUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) GetRemaining(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMenuItemsRepository) Reserve(ctx context.Context, id int64, quantity int64, autoDisable bool) error {
	args := m.Called(ctx, id, quantity, autoDisable)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) Release(ctx context.Context, id int64, quantity int64) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *mockMenuItemsRepository) ApplyStockWrites(ctx context.Context, writes []repository.StockWrite) error {
	args := m.Called(ctx, writes)
	return args.Error(0)
}

// mockMenuTemplatesRepository implements repository.MenuTemplatesRepository using testify/mock.
type mockMenuTemplatesRepository struct {
	mock.Mock
}

func newMockMenuTemplatesRepository() *mockMenuTemplatesRepository {
	return &mockMenuTemplatesRepository{}
}

func (m *mockMenuTemplatesRepository) Upsert(ctx context.Context, tpl *models.MenuTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *mockMenuTemplatesRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMenuTemplatesRepository) List(ctx context.Context) ([]*models.MenuTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MenuTemplate), args.Error(1)
}

// mockBillsRepository implements repository.BillsRepository using testify/mock.
type mockBillsRepository struct {
	mock.Mock
}

func newMockBillsRepository() *mockBillsRepository {
	return &mockBillsRepository{}
}

func (m *mockBillsRepository) Create(ctx context.Context, bill *models.Bill) (primitive.ObjectID, error) {
	args := m.Called(ctx, bill)
	if oid := args.Get(0); oid != nil {
		return oid.(primitive.ObjectID), args.Error(1)
	}
	return primitive.NilObjectID, args.Error(1)
}

func (m *mockBillsRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *mockBillsRepository) List(ctx context.Context, params *repository.ListBillsParams) ([]*models.Bill, int64, error) {
	args := m.Called(ctx, params)
	var bills []*models.Bill
	if v := args.Get(0); v != nil {
		bills = v.([]*models.Bill)
	}
	return bills, args.Get(1).(int64), args.Error(2)
}

func (m *mockBillsRepository) ListByDateRange(ctx context.Context, from, to time.Time, status string) ([]*models.Bill, error) {
	args := m.Called(ctx, from, to, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bill), args.Error(1)
}

func (m *mockBillsRepository) MarkCancelled(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// mockCountersRepository implements repository.CountersRepository using testify/mock.
type mockCountersRepository struct {
	mock.Mock
}

func newMockCountersRepository() *mockCountersRepository {
	return &mockCountersRepository{}
}

func (m *mockCountersRepository) NextBlock(ctx context.Context, namespace string, count int64) (int64, error) {
	args := m.Called(ctx, namespace, count)
	return args.Get(0).(int64), args.Error(1)
}

// mockSettingsRepository implements repository.SettingsRepository using testify/mock.
type mockSettingsRepository struct {
	mock.Mock
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{}
}

func (m *mockSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *mockSettingsRepository) Put(ctx context.Context, s *models.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// mockActivityLogRepository implements repository.ActivityLogRepository using testify/mock.
type mockActivityLogRepository struct {
	mock.Mock
}

func newMockActivityLogRepository() *mockActivityLogRepository {
	return &mockActivityLogRepository{}
}

func (m *mockActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockActivityLogRepository) List(ctx context.Context, params *repository.ListActivityParams) ([]*models.ActivityLog, int64, error) {
	args := m.Called(ctx, params)
	var entries []*models.ActivityLog
	if v := args.Get(0); v != nil {
		entries = v.([]*models.ActivityLog)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *mockActivityLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
