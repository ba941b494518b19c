package service

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/logic"
	"github.com/Mukunt07/subramaniya-mess/pkg/pagination"
)

// ActivityService exposes the audit trail over HTTP.
type ActivityService struct {
	activityLogic *logic.ActivityLogic
	logger        *zap.Logger
}

func NewActivityService(activityLogic *logic.ActivityLogic, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityLogic: activityLogic,
		logger:        logger.Named("ActivityService"),
	}
}

// ListActivities handles GET /api/v1/activities.
func (s *ActivityService) ListActivities(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	action := c.Query("action")

	result, err := s.activityLogic.GetActivities(c.Request.Context(), action, pagination.NewPageRequest(page, pageSize))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, result)
}
