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
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
	"github.com/Mukunt07/subramaniya-mess/pkg/pagination"
)

func TestActivityRecorder(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsEntry", func(t *testing.T) {
		activityRepo := newMockActivityLogRepository()
		activityRepo.On("Create", ctx, mock.MatchedBy(func(e *models.ActivityLog) bool {
			return e.Action == constants.ActivityBillCreated &&
				e.ReferenceID == "BILL-0042" &&
				e.Details == "Bill BILL-0042 created" &&
				!e.ID.IsZero() &&
				!e.CreatedAt.IsZero()
		})).Return(nil).Once()

		recorder := newTestRecorder(activityRepo)
		recorder.Record(ctx, constants.ActivityBillCreated, "BILL-0042", "Bill BILL-0042 created")

		activityRepo.AssertExpectations(t)
	})

	t.Run("SwallowsPersistError", func(t *testing.T) {
		// A lost audit entry must never fail the business operation.
		activityRepo := newMockActivityLogRepository()
		activityRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		recorder := newTestRecorder(activityRepo)
		recorder.Record(ctx, constants.ActivityItemAdded, "5", "Added Masala Dosa")

		activityRepo.AssertExpectations(t)
	})
}

func TestGetActivities(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		activityRepo := newMockActivityLogRepository()
		entries := []*models.ActivityLog{
			{Action: constants.ActivityBillCreated},
			{Action: constants.ActivityBillCreated},
		}
		activityRepo.On("List", ctx, &repository.ListActivityParams{
			Action: constants.ActivityBillCreated,
			Offset: 0,
			Limit:  20,
		}).Return(entries, int64(2), nil).Once()

		l := NewActivityLogic(activityRepo, zap.NewNop())
		result, err := l.GetActivities(ctx, constants.ActivityBillCreated, pagination.NewPageRequest(1, 20))

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, entries, result.Data)
		activityRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		activityRepo := newMockActivityLogRepository()
		activityRepo.On("List", ctx, mock.Anything).Return(nil, int64(0), errors.New("db down")).Once()

		l := NewActivityLogic(activityRepo, zap.NewNop())
		result, err := l.GetActivities(ctx, "", pagination.NewPageRequest(1, 20))

		assert.Error(t, err)
		assert.Nil(t, result)
		activityRepo.AssertExpectations(t)
	})
}
