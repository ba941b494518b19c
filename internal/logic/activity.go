package logic

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
	"github.com/Mukunt07/subramaniya-mess/internal/mq"
	"github.com/Mukunt07/subramaniya-mess/pkg/pagination"
)

// ActivityEventTopic is the routing key activity events are published under.
type ActivityEventTopic string

// ActivityRecorder appends to the audit trail and mirrors each entry onto the
// message bus. Both sinks are best-effort: recording happens after the
// business operation committed, and a lost entry must never surface as a
// failure of that operation.
type ActivityRecorder struct {
	activityRepo repository.ActivityLogRepository
	publisher    mq.Publisher
	topic        ActivityEventTopic
	logger       *zap.Logger
}

func NewActivityRecorder(activityRepo repository.ActivityLogRepository, publisher mq.Publisher, topic ActivityEventTopic, logger *zap.Logger) *ActivityRecorder {
	return &ActivityRecorder{
		activityRepo: activityRepo,
		publisher:    publisher,
		topic:        topic,
		logger:       logger.Named("ActivityRecorder"),
	}
}

// Record writes one activity entry. Errors are logged and swallowed.
func (r *ActivityRecorder) Record(ctx context.Context, action, referenceID, details string) {
	entry := &models.ActivityLog{
		ID:          primitive.NewObjectID(),
		Action:      action,
		ReferenceID: referenceID,
		Details:     details,
		CreatedAt:   time.Now(),
	}

	if err := r.activityRepo.Create(ctx, entry); err != nil {
		r.logger.Error("Record: failed to persist activity entry", zap.Error(err), zap.String("action", action))
	}

	body, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error("Record: failed to marshal activity entry", zap.Error(err), zap.String("action", action))
		return
	}
	if err := r.publisher.Publish(ctx, string(r.topic), body); err != nil {
		r.logger.Warn("Record: failed to publish activity event", zap.Error(err), zap.String("action", action))
	}
}

// ActivityLogic serves the activity trail read side.
type ActivityLogic struct {
	activityRepo repository.ActivityLogRepository
	logger       *zap.Logger
}

func NewActivityLogic(activityRepo repository.ActivityLogRepository, logger *zap.Logger) *ActivityLogic {
	return &ActivityLogic{
		activityRepo: activityRepo,
		logger:       logger.Named("ActivityLogic"),
	}
}

func (l *ActivityLogic) GetActivities(ctx context.Context, action string, pageReq *pagination.PageRequest) (*pagination.PageResult, error) {
	entries, total, err := l.activityRepo.List(ctx, &repository.ListActivityParams{
		Action: action,
		Offset: pageReq.GetOffset(),
		Limit:  pageReq.GetLimit(),
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewPageResult(entries, total, pageReq), nil
}
