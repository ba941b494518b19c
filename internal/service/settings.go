package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/logic"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

// SettingsService exposes the restaurant configuration over HTTP.
type SettingsService struct {
	settingsLogic *logic.SettingsLogic
	logger        *zap.Logger
}

func NewSettingsService(settingsLogic *logic.SettingsLogic, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsLogic: settingsLogic,
		logger:        logger.Named("SettingsService"),
	}
}

// GetSettings handles GET /api/v1/settings.
func (s *SettingsService) GetSettings(c *gin.Context) {
	settings, err := s.settingsLogic.GetSettings(c.Request.Context())
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, settings)
}

// UpdateSettings handles PUT /api/v1/settings.
func (s *SettingsService) UpdateSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	settings, err := s.settingsLogic.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, settings)
}
