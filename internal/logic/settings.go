package logic

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

// SettingsLogic reads and updates the restaurant configuration document.
type SettingsLogic struct {
	settingsRepo repository.SettingsRepository
	recorder     *ActivityRecorder
	logger       *zap.Logger
}

func NewSettingsLogic(settingsRepo repository.SettingsRepository, recorder *ActivityRecorder, logger *zap.Logger) *SettingsLogic {
	return &SettingsLogic{
		settingsRepo: settingsRepo,
		recorder:     recorder,
		logger:       logger.Named("SettingsLogic"),
	}
}

// GetSettings seeds the defaults on first read so every caller after that
// sees a persisted document.
func (l *SettingsLogic) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := l.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			defaults := models.DefaultSettings()
			if putErr := l.settingsRepo.Put(ctx, defaults); putErr != nil {
				return nil, putErr
			}
			return defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

func (l *SettingsLogic) UpdateSettings(ctx context.Context, s *models.Settings) (*models.Settings, error) {
	if strings.TrimSpace(s.RestaurantName) == "" {
		return nil, ErrInvalidName
	}
	if s.GSTPercentage < 0 || s.GSTPercentage > 100 {
		return nil, ErrInvalidGST
	}
	if s.LowStockThreshold < 0 {
		return nil, ErrInvalidStock
	}
	if strings.TrimSpace(s.BillPrefix) == "" {
		s.BillPrefix = models.DefaultSettings().BillPrefix
	}

	if err := l.settingsRepo.Put(ctx, s); err != nil {
		return nil, err
	}

	l.recorder.Record(ctx, constants.ActivitySettingsUpdated, "", "Settings updated")
	return s, nil
}
