package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

type menuFixture struct {
	menuRepo      *mockMenuItemsRepository
	templatesRepo *mockMenuTemplatesRepository
	countersRepo  *mockCountersRepository
	activityRepo  *mockActivityLogRepository
	logic         *menuLogic
}

func newMenuFixture() *menuFixture {
	f := &menuFixture{
		menuRepo:      newMockMenuItemsRepository(),
		templatesRepo: newMockMenuTemplatesRepository(),
		countersRepo:  newMockCountersRepository(),
		activityRepo:  newMockActivityLogRepository(),
	}
	f.logic = NewMenuLogic(
		f.menuRepo,
		f.templatesRepo,
		f.countersRepo,
		passthroughTxManager{},
		newTestRecorder(f.activityRepo),
		zap.NewNop(),
	)
	return f
}

func (f *menuFixture) assertExpectations(t *testing.T) {
	f.menuRepo.AssertExpectations(t)
	f.templatesRepo.AssertExpectations(t)
	f.countersRepo.AssertExpectations(t)
	f.activityRepo.AssertExpectations(t)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newMenuFixture()
		f.countersRepo.On("NextBlock", ctx, constants.CounterMenuItems, int64(1)).Return(int64(11), nil).Once()
		f.menuRepo.On("Insert", ctx, mock.MatchedBy(func(item *models.MenuItem) bool {
			return item.ID == 11 && item.Name == "Masala Dosa" && item.Available && item.SoldQuantity == 0
		})).Return(nil).Once()
		f.templatesRepo.On("Upsert", ctx, mock.MatchedBy(func(tpl *models.MenuTemplate) bool {
			return tpl.ID == "MASALA_DOSA" && tpl.Name == "Masala Dosa"
		})).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityItemAdded
		})).Return(nil).Once()

		item, err := f.logic.AddItem(ctx, dto.NewAddItemRequest("  Masala Dosa  ", constants.CategoryBreakfast, 60, 50))

		require.NoError(t, err)
		assert.Equal(t, int64(11), item.ID)
		assert.Equal(t, "Masala Dosa", item.Name)
		assert.Equal(t, constants.CategoryBreakfast.String(), item.Category)
		assert.True(t, item.Available)
		f.assertExpectations(t)
	})

	t.Run("ZeroStockStartsUnavailable", func(t *testing.T) {
		f := newMenuFixture()
		f.countersRepo.On("NextBlock", ctx, constants.CounterMenuItems, int64(1)).Return(int64(12), nil).Once()
		f.menuRepo.On("Insert", ctx, mock.MatchedBy(func(item *models.MenuItem) bool {
			return !item.Available
		})).Return(nil).Once()
		f.templatesRepo.On("Upsert", ctx, mock.Anything).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		item, err := f.logic.AddItem(ctx, dto.NewAddItemRequest("Payasam", constants.CategorySweets, 40, 0))

		require.NoError(t, err)
		assert.False(t, item.Available)
		f.assertExpectations(t)
	})

	t.Run("InvalidName", func(t *testing.T) {
		f := newMenuFixture()

		item, err := f.logic.AddItem(ctx, dto.NewAddItemRequest("   ", constants.CategoryLunch, 60, 50))

		assert.ErrorIs(t, err, ErrInvalidName)
		assert.Nil(t, item)
		f.assertExpectations(t)
	})

	t.Run("InvalidPrice", func(t *testing.T) {
		f := newMenuFixture()

		item, err := f.logic.AddItem(ctx, dto.NewAddItemRequest("Masala Dosa", constants.CategoryLunch, -1, 50))

		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Nil(t, item)
		f.assertExpectations(t)
	})

	t.Run("TemplateUpsertFailureIsNonFatal", func(t *testing.T) {
		f := newMenuFixture()
		f.countersRepo.On("NextBlock", ctx, constants.CounterMenuItems, int64(1)).Return(int64(13), nil).Once()
		f.menuRepo.On("Insert", ctx, mock.Anything).Return(nil).Once()
		f.templatesRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("db down")).Once()
		f.activityRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		item, err := f.logic.AddItem(ctx, dto.NewAddItemRequest("Rasam", constants.CategoryLunch, 20, 30))

		require.NoError(t, err)
		assert.NotNil(t, item)
		f.assertExpectations(t)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("RenameMovesTemplate", func(t *testing.T) {
		f := newMenuFixture()
		current := &models.MenuItem{ID: 5, Name: "Masala Dosa", Category: "Breakfast", Price: 60, PreparedQuantity: 50, PreparedDate: "2026-08-28"}
		updated := &models.MenuItem{ID: 5, Name: "Ghee Dosa", Category: "Breakfast", Price: 70, PreparedQuantity: 50, PreparedDate: "2026-08-28"}
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(current, nil).Once()
		f.menuRepo.On("Update", ctx, int64(5), mock.MatchedBy(func(upd *repository.MenuItemUpdate) bool {
			// Prepared quantity unchanged, so the batch date must not move.
			return upd.Name == "Ghee Dosa" && upd.PreparedDate == "2026-08-28"
		})).Return(nil).Once()
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(updated, nil).Once()
		f.templatesRepo.On("Delete", ctx, "MASALA_DOSA").Return(nil).Once()
		f.templatesRepo.On("Upsert", ctx, mock.MatchedBy(func(tpl *models.MenuTemplate) bool {
			return tpl.ID == "GHEE_DOSA"
		})).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		item, err := f.logic.UpdateItem(ctx, dto.NewUpdateItemRequest(5, "Ghee Dosa", constants.CategoryBreakfast, 70, 50, true))

		require.NoError(t, err)
		assert.Equal(t, "Ghee Dosa", item.Name)
		f.assertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newMenuFixture()
		f.menuRepo.On("GetByID", ctx, int64(99)).Return(nil, mongodb.ErrNotFound).Once()

		item, err := f.logic.UpdateItem(ctx, dto.NewUpdateItemRequest(99, "Ghee Dosa", constants.CategoryBreakfast, 70, 50, true))

		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Nil(t, item)
		f.assertExpectations(t)
	})
}

func TestUpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newMenuFixture()
		current := &models.MenuItem{ID: 5, Name: "Masala Dosa", Category: "Breakfast", Price: 60, PreparedQuantity: 50, SoldQuantity: 37}
		refreshed := &models.MenuItem{ID: 5, Name: "Masala Dosa", Category: "Breakfast", Price: 60, PreparedQuantity: 80, SoldQuantity: 0, Available: true}
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(current, nil).Once()
		f.menuRepo.On("ApplyStockWrites", ctx, []repository.StockWrite{
			{ItemID: 5, ExpectedSold: 37, NewSold: 0},
		}).Return(nil).Once()
		f.menuRepo.On("Update", ctx, int64(5), mock.MatchedBy(func(upd *repository.MenuItemUpdate) bool {
			return upd.PreparedQuantity == 80 && upd.Available
		})).Return(nil).Once()
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(refreshed, nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityStockUpdated
		})).Return(nil).Once()

		item, err := f.logic.UpdateStock(ctx, 5, 80)

		require.NoError(t, err)
		assert.Equal(t, int64(80), item.PreparedQuantity)
		assert.Equal(t, int64(0), item.SoldQuantity)
		f.assertExpectations(t)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		f := newMenuFixture()

		item, err := f.logic.UpdateStock(ctx, 5, -1)

		assert.ErrorIs(t, err, ErrInvalidStock)
		assert.Nil(t, item)
		f.assertExpectations(t)
	})

	t.Run("ZeroDisablesItem", func(t *testing.T) {
		f := newMenuFixture()
		current := &models.MenuItem{ID: 5, Name: "Masala Dosa", SoldQuantity: 10}
		refreshed := &models.MenuItem{ID: 5, Name: "Masala Dosa", PreparedQuantity: 0, Available: false}
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(current, nil).Once()
		f.menuRepo.On("ApplyStockWrites", ctx, mock.Anything).Return(nil).Once()
		f.menuRepo.On("Update", ctx, int64(5), mock.MatchedBy(func(upd *repository.MenuItemUpdate) bool {
			return upd.PreparedQuantity == 0 && !upd.Available
		})).Return(nil).Once()
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(refreshed, nil).Once()
		f.activityRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		item, err := f.logic.UpdateStock(ctx, 5, 0)

		require.NoError(t, err)
		assert.False(t, item.Available)
		f.assertExpectations(t)
	})
}

func TestToggleAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newMenuFixture()
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(&models.MenuItem{ID: 5, Name: "Masala Dosa", Available: true}, nil).Once()
		f.menuRepo.On("SetAvailability", ctx, int64(5), false).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityItemToggled
		})).Return(nil).Once()

		item, err := f.logic.ToggleAvailability(ctx, 5)

		require.NoError(t, err)
		assert.False(t, item.Available)
		f.assertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newMenuFixture()
		f.menuRepo.On("GetByID", ctx, int64(99)).Return(nil, mongodb.ErrNotFound).Once()

		item, err := f.logic.ToggleAvailability(ctx, 99)

		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Nil(t, item)
		f.assertExpectations(t)
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newMenuFixture()
		f.menuRepo.On("GetByID", ctx, int64(5)).Return(&models.MenuItem{ID: 5, Name: "Masala Dosa"}, nil).Once()
		f.menuRepo.On("Delete", ctx, int64(5)).Return(nil).Once()
		f.templatesRepo.On("Delete", ctx, "MASALA_DOSA").Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityItemDeleted
		})).Return(nil).Once()

		err := f.logic.DeleteItem(ctx, 5)

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newMenuFixture()
		f.menuRepo.On("GetByID", ctx, int64(99)).Return(nil, mongodb.ErrNotFound).Once()

		err := f.logic.DeleteItem(ctx, 99)

		assert.ErrorIs(t, err, ErrItemNotFound)
		f.assertExpectations(t)
	})
}

func TestRestoreDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("RestoresMissingOnly", func(t *testing.T) {
		f := newMenuFixture()
		f.templatesRepo.On("List", ctx).Return([]*models.MenuTemplate{
			{ID: "MASALA_DOSA", Name: "Masala Dosa", Category: "Breakfast", Price: 60},
			{ID: "FILTER_COFFEE", Name: "Filter Coffee", Category: "Snacks", Price: 25},
			{ID: "PONGAL", Name: "Pongal", Category: "Breakfast", Price: 45},
		}, nil).Once()
		// Masala Dosa is still on the menu and must not be duplicated.
		f.menuRepo.On("List", ctx).Return([]*models.MenuItem{
			{ID: 1, Name: "Masala Dosa"},
		}, nil).Once()
		f.countersRepo.On("NextBlock", ctx, constants.CounterMenuItems, int64(2)).Return(int64(20), nil).Once()
		f.menuRepo.On("InsertMany", ctx, mock.MatchedBy(func(items []*models.MenuItem) bool {
			if len(items) != 2 {
				return false
			}
			first, second := items[0], items[1]
			return first.ID == 20 && second.ID == 21 &&
				first.Name == "Filter Coffee" && second.Name == "Pongal" &&
				!first.Available && first.PreparedQuantity == 0 && first.SoldQuantity == 0
		})).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityMenuRestored
		})).Return(nil).Once()

		restored, err := f.logic.RestoreDefaults(ctx)

		require.NoError(t, err)
		require.Len(t, restored, 2)
		f.assertExpectations(t)
	})

	t.Run("NoTemplates", func(t *testing.T) {
		f := newMenuFixture()
		f.templatesRepo.On("List", ctx).Return([]*models.MenuTemplate{}, nil).Once()

		restored, err := f.logic.RestoreDefaults(ctx)

		require.NoError(t, err)
		assert.Empty(t, restored)
		f.assertExpectations(t)
	})

	t.Run("AllPresent", func(t *testing.T) {
		f := newMenuFixture()
		f.templatesRepo.On("List", ctx).Return([]*models.MenuTemplate{
			{ID: "MASALA_DOSA", Name: "Masala Dosa"},
		}, nil).Once()
		f.menuRepo.On("List", ctx).Return([]*models.MenuItem{
			{ID: 1, Name: "Masala Dosa"},
		}, nil).Once()

		restored, err := f.logic.RestoreDefaults(ctx)

		require.NoError(t, err)
		assert.Empty(t, restored)
		f.assertExpectations(t)
	})

	t.Run("InsertError", func(t *testing.T) {
		f := newMenuFixture()
		f.templatesRepo.On("List", ctx).Return([]*models.MenuTemplate{
			{ID: "PONGAL", Name: "Pongal"},
		}, nil).Once()
		f.menuRepo.On("List", ctx).Return([]*models.MenuItem{}, nil).Once()
		f.countersRepo.On("NextBlock", ctx, constants.CounterMenuItems, int64(1)).Return(int64(30), nil).Once()
		f.menuRepo.On("InsertMany", ctx, mock.Anything).Return(errors.New("db down")).Once()

		restored, err := f.logic.RestoreDefaults(ctx)

		assert.ErrorIs(t, err, ErrTransactionFailed)
		assert.Nil(t, restored)
		f.assertExpectations(t)
	})
}
