package service

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/logic"
)

// AnalyticsService exposes the dashboard aggregates over HTTP.
type AnalyticsService struct {
	analyticsLogic *logic.AnalyticsLogic
	logger         *zap.Logger
}

func NewAnalyticsService(analyticsLogic *logic.AnalyticsLogic, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		analyticsLogic: analyticsLogic,
		logger:         logger.Named("AnalyticsService"),
	}
}

// GetReport handles GET /api/v1/analytics/report.
func (s *AnalyticsService) GetReport(c *gin.Context) {
	report, err := s.analyticsLogic.GetReport(c.Request.Context())
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, report)
}

// GetDashboardStats handles GET /api/v1/analytics/stats.
func (s *AnalyticsService) GetDashboardStats(c *gin.Context) {
	stats, err := s.analyticsLogic.GetDashboardStats(c.Request.Context())
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, stats)
}
