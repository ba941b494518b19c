package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

func buildMenuItem(id int64, prepared, sold int64) *models.MenuItem {
	now := time.Now().UTC()
	return &models.MenuItem{
		ID:               id,
		Name:             "Masala Dosa",
		Category:         "Breakfast",
		Price:            60,
		PreparedQuantity: prepared,
		SoldQuantity:     sold,
		Available:        true,
		PreparedDate:     now.Format("2006-01-02"),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestMenuItemsDAO_InsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	t.Run("insert then read back", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		item := buildMenuItem(1, 50, 0)
		require.NoError(t, dao.Insert(testCtx, item))

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, item.Name, stored.Name)
		require.Equal(t, int64(50), stored.PreparedQuantity)
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err := dao.GetByID(testCtx, 99)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetByIDs silently omits missing items", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 50, 0)))

		items, err := dao.GetByIDs(testCtx, []int64{1, 99})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, int64(1), items[0].ID)
	})
}

func TestMenuItemsDAO_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	t.Run("updates editable fields", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 50, 10)))

		err := dao.Update(testCtx, 1, &repository.MenuItemUpdate{
			Name:             "Ghee Dosa",
			Category:         "Breakfast",
			Price:            70,
			PreparedQuantity: 80,
			PreparedDate:     "2026-08-29",
			Available:        true,
		})
		require.NoError(t, err)

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, "Ghee Dosa", stored.Name)
		require.Equal(t, int64(80), stored.PreparedQuantity)
		// Sold counter is never touched by a plain update.
		require.Equal(t, int64(10), stored.SoldQuantity)
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := dao.Update(testCtx, 99, &repository.MenuItemUpdate{Name: "Ghee Dosa"})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMenuItemsDAO_Reserve(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	t.Run("reserves stock and reports remaining", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 10, 0)))
		require.NoError(t, dao.Reserve(testCtx, 1, 4, false))

		remaining, err := dao.GetRemaining(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(6), remaining)
	})

	t.Run("oversell returns InsufficientStockError", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 10, 8)))

		err := dao.Reserve(testCtx, 1, 5, false)
		var insufficient *InsufficientStockError
		require.True(t, errors.As(err, &insufficient))
		require.Equal(t, int64(2), insufficient.Available)
	})

	t.Run("auto-disable clears the available flag at zero", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 10, 8)))
		require.NoError(t, dao.Reserve(testCtx, 1, 2, true))

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.False(t, stored.Available)
		require.Equal(t, int64(0), stored.Remaining())
	})
}

func TestMenuItemsDAO_Release(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	t.Run("restores sold stock", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 10, 5)))
		require.NoError(t, dao.Release(testCtx, 1, 3))

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(2), stored.SoldQuantity)
	})

	t.Run("clamps at zero and never re-enables", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		item := buildMenuItem(1, 10, 2)
		item.Available = false
		require.NoError(t, dao.Insert(testCtx, item))
		require.NoError(t, dao.Release(testCtx, 1, 5))

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(0), stored.SoldQuantity)
		require.False(t, stored.Available)
	})
}

func TestMenuItemsDAO_ApplyStockWrites(t *testing.T) {
	t.Run("empty batch is a no-op", func(t *testing.T) {
		dao := &MenuItemsDAO{logger: zap.NewNop()}
		require.NoError(t, dao.ApplyStockWrites(context.Background(), nil))
	})

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	t.Run("applies guarded writes across items", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 50, 10)))
		require.NoError(t, dao.Insert(testCtx, buildMenuItem(2, 30, 5)))

		err := dao.ApplyStockWrites(testCtx, []repository.StockWrite{
			{ItemID: 1, ExpectedSold: 10, NewSold: 12},
			{ItemID: 2, ExpectedSold: 5, NewSold: 6},
		})
		require.NoError(t, err)

		first, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(12), first.SoldQuantity)

		second, err := dao.GetByID(testCtx, 2)
		require.NoError(t, err)
		require.Equal(t, int64(6), second.SoldQuantity)
	})

	t.Run("stale expected sold aborts with ErrStaleWrite", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 50, 10)))

		err := dao.ApplyStockWrites(testCtx, []repository.StockWrite{
			{ItemID: 1, ExpectedSold: 9, NewSold: 11},
		})
		require.ErrorIs(t, err, ErrStaleWrite)
	})

	t.Run("disable flag is applied in the same write", func(t *testing.T) {
		dao := NewMenuItemsDAO(setupTestDatabase(t), zap.NewNop())

		testCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		require.NoError(t, dao.Insert(testCtx, buildMenuItem(1, 10, 8)))

		err := dao.ApplyStockWrites(testCtx, []repository.StockWrite{
			{ItemID: 1, ExpectedSold: 8, NewSold: 10, Disable: true},
		})
		require.NoError(t, err)

		stored, err := dao.GetByID(testCtx, 1)
		require.NoError(t, err)
		require.False(t, stored.Available)
	})
}
