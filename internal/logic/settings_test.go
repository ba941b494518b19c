package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

type settingsFixture struct {
	settingsRepo *mockSettingsRepository
	activityRepo *mockActivityLogRepository
	logic        *SettingsLogic
}

func newSettingsFixture() *settingsFixture {
	f := &settingsFixture{
		settingsRepo: newMockSettingsRepository(),
		activityRepo: newMockActivityLogRepository(),
	}
	f.logic = NewSettingsLogic(f.settingsRepo, newTestRecorder(f.activityRepo), zap.NewNop())
	return f
}

func (f *settingsFixture) assertExpectations(t *testing.T) {
	f.settingsRepo.AssertExpectations(t)
	f.activityRepo.AssertExpectations(t)
}

func TestGetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing", func(t *testing.T) {
		f := newSettingsFixture()
		stored := &models.Settings{RestaurantName: "Subramaniya Mess", GSTPercentage: 12, BillPrefix: "SM"}
		f.settingsRepo.On("Get", ctx).Return(stored, nil).Once()

		settings, err := f.logic.GetSettings(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, settings)
		f.assertExpectations(t)
	})

	t.Run("SeedsDefaultsOnFirstRead", func(t *testing.T) {
		f := newSettingsFixture()
		f.settingsRepo.On("Get", ctx).Return(nil, mongodb.ErrNotFound).Once()
		f.settingsRepo.On("Put", ctx, mock.MatchedBy(func(s *models.Settings) bool {
			return s.BillPrefix == "BILL" && s.AutoDisableStock
		})).Return(nil).Once()

		settings, err := f.logic.GetSettings(ctx)

		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), settings)
		f.assertExpectations(t)
	})
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newSettingsFixture()
		f.settingsRepo.On("Put", ctx, mock.AnythingOfType("*models.Settings")).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivitySettingsUpdated
		})).Return(nil).Once()

		settings, err := f.logic.UpdateSettings(ctx, &models.Settings{
			RestaurantName: "Subramaniya Mess",
			GSTPercentage:  18,
			BillPrefix:     "SM",
		})

		require.NoError(t, err)
		assert.Equal(t, "SM", settings.BillPrefix)
		f.assertExpectations(t)
	})

	t.Run("EmptyPrefixFallsBack", func(t *testing.T) {
		f := newSettingsFixture()
		f.settingsRepo.On("Put", ctx, mock.MatchedBy(func(s *models.Settings) bool {
			return s.BillPrefix == "BILL"
		})).Return(nil).Once()
		f.activityRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		settings, err := f.logic.UpdateSettings(ctx, &models.Settings{
			RestaurantName: "Subramaniya Mess",
			GSTPercentage:  5,
		})

		require.NoError(t, err)
		assert.Equal(t, "BILL", settings.BillPrefix)
		f.assertExpectations(t)
	})

	t.Run("InvalidGST", func(t *testing.T) {
		f := newSettingsFixture()

		settings, err := f.logic.UpdateSettings(ctx, &models.Settings{
			RestaurantName: "Subramaniya Mess",
			GSTPercentage:  101,
		})

		assert.ErrorIs(t, err, ErrInvalidGST)
		assert.Nil(t, settings)
		f.assertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		f := newSettingsFixture()

		settings, err := f.logic.UpdateSettings(ctx, &models.Settings{RestaurantName: "  "})

		assert.ErrorIs(t, err, ErrInvalidName)
		assert.Nil(t, settings)
		f.assertExpectations(t)
	})
}
