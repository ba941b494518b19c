package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/dao/repository"
	"github.com/Mukunt07/subramaniya-mess/internal/db"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/helper"
	"github.com/Mukunt07/subramaniya-mess/internal/models"
)

// MenuLogic defines the interface for menu lifecycle operations.
type MenuLogic interface {
	AddItem(ctx context.Context, d *dto.AddItemRequest) (*models.MenuItem, error)
	UpdateItem(ctx context.Context, d *dto.UpdateItemRequest) (*models.MenuItem, error)
	UpdateStock(ctx context.Context, id int64, preparedQuantity int64) (*models.MenuItem, error)
	ToggleAvailability(ctx context.Context, id int64) (*models.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
	RestoreDefaults(ctx context.Context) ([]*models.MenuItem, error)
	GetMenu(ctx context.Context) ([]*models.MenuItem, error)
	GetItem(ctx context.Context, id int64) (*models.MenuItem, error)
}

var _ MenuLogic = (*menuLogic)(nil)

type menuLogic struct {
	menuRepo      repository.MenuItemsRepository
	templatesRepo repository.MenuTemplatesRepository
	countersRepo  repository.CountersRepository
	txManager     db.TransactionManager
	recorder      *ActivityRecorder
	logger        *zap.Logger
}

func NewMenuLogic(
	menuRepo repository.MenuItemsRepository,
	templatesRepo repository.MenuTemplatesRepository,
	countersRepo repository.CountersRepository,
	txManager db.TransactionManager,
	recorder *ActivityRecorder,
	logger *zap.Logger,
) *menuLogic {
	return &menuLogic{
		menuRepo:      menuRepo,
		templatesRepo: templatesRepo,
		countersRepo:  countersRepo,
		txManager:     txManager,
		recorder:      recorder,
		logger:        logger.Named("MenuLogic"),
	}
}

func validateItemInput(name string, price float64, prepared int64) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	if prepared < 0 {
		return ErrInvalidStock
	}
	return nil
}

// AddItem mints the item id from the menu_items counter and stores a matching
// template so the dish survives RestoreDefaults.
func (l *menuLogic) AddItem(ctx context.Context, d *dto.AddItemRequest) (*models.MenuItem, error) {
	if err := validateItemInput(d.GetName(), d.GetPrice(), d.GetPreparedQuantity()); err != nil {
		return nil, err
	}

	id, err := l.countersRepo.NextBlock(ctx, constants.CounterMenuItems, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve item id: %w", err)
	}

	now := time.Now()
	item := &models.MenuItem{
		ID:               id,
		Name:             strings.TrimSpace(d.GetName()),
		Category:         d.GetCategory().String(),
		Price:            helper.RoundRupees(d.GetPrice()),
		PreparedQuantity: d.GetPreparedQuantity(),
		SoldQuantity:     0,
		Available:        d.GetPreparedQuantity() > 0,
		PreparedDate:     helper.DateString(now),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := l.menuRepo.Insert(ctx, item); err != nil {
		return nil, err
	}

	if err := l.templatesRepo.Upsert(ctx, templateFor(item)); err != nil {
		// The item itself is committed; a stale template only degrades a
		// future RestoreDefaults.
		l.logger.Warn("AddItem: failed to upsert template", zap.Error(err), zap.Int64("itemID", item.ID))
	}

	l.recorder.Record(ctx, constants.ActivityItemAdded, fmt.Sprintf("%d", item.ID),
		fmt.Sprintf("Added %s (%s) at %.2f", item.Name, item.Category, item.Price))
	return item, nil
}

func (l *menuLogic) UpdateItem(ctx context.Context, d *dto.UpdateItemRequest) (*models.MenuItem, error) {
	if err := validateItemInput(d.GetName(), d.GetPrice(), d.GetPreparedQuantity()); err != nil {
		return nil, err
	}

	current, err := l.menuRepo.GetByID(ctx, d.GetID())
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	upd := &repository.MenuItemUpdate{
		Name:             strings.TrimSpace(d.GetName()),
		Category:         d.GetCategory().String(),
		Price:            helper.RoundRupees(d.GetPrice()),
		PreparedQuantity: d.GetPreparedQuantity(),
		PreparedDate:     current.PreparedDate,
		Available:        d.GetAvailable(),
	}
	if d.GetPreparedQuantity() != current.PreparedQuantity {
		upd.PreparedDate = helper.DateString(time.Now())
	}
	if err := l.menuRepo.Update(ctx, d.GetID(), upd); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item, err := l.menuRepo.GetByID(ctx, d.GetID())
	if err != nil {
		return nil, err
	}

	// Renaming the dish moves it to a new template key; clean the old one up.
	if oldID := helper.SanitizeTemplateID(current.Name); oldID != helper.SanitizeTemplateID(item.Name) {
		if err := l.templatesRepo.Delete(ctx, oldID); err != nil {
			l.logger.Warn("UpdateItem: failed to delete stale template", zap.Error(err), zap.String("templateID", oldID))
		}
	}
	if err := l.templatesRepo.Upsert(ctx, templateFor(item)); err != nil {
		l.logger.Warn("UpdateItem: failed to upsert template", zap.Error(err), zap.Int64("itemID", item.ID))
	}

	l.recorder.Record(ctx, constants.ActivityStockUpdated, fmt.Sprintf("%d", item.ID),
		fmt.Sprintf("Updated %s", item.Name))
	return item, nil
}

// UpdateStock starts a fresh prepared batch: the prepared counter is
// overwritten, sold resets to zero and the prepared date moves to today.
func (l *menuLogic) UpdateStock(ctx context.Context, id int64, preparedQuantity int64) (*models.MenuItem, error) {
	if preparedQuantity < 0 {
		return nil, ErrInvalidStock
	}

	current, err := l.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	writes := []repository.StockWrite{{
		ItemID:       id,
		ExpectedSold: current.SoldQuantity,
		NewSold:      0,
	}}
	if err := l.menuRepo.ApplyStockWrites(ctx, writes); err != nil {
		return nil, err
	}
	upd := &repository.MenuItemUpdate{
		Name:             current.Name,
		Category:         current.Category,
		Price:            current.Price,
		PreparedQuantity: preparedQuantity,
		PreparedDate:     helper.DateString(time.Now()),
		Available:        preparedQuantity > 0,
	}
	if err := l.menuRepo.Update(ctx, id, upd); err != nil {
		return nil, err
	}

	item, err := l.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.recorder.Record(ctx, constants.ActivityStockUpdated, fmt.Sprintf("%d", id),
		fmt.Sprintf("Stock of %s set to %d", item.Name, preparedQuantity))
	return item, nil
}

func (l *menuLogic) ToggleAvailability(ctx context.Context, id int64) (*models.MenuItem, error) {
	current, err := l.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if err := l.menuRepo.SetAvailability(ctx, id, !current.Available); err != nil {
		return nil, err
	}
	current.Available = !current.Available

	l.recorder.Record(ctx, constants.ActivityItemToggled, fmt.Sprintf("%d", id),
		fmt.Sprintf("%s is now %s", current.Name, availabilityWord(current.Available)))
	return current, nil
}

func (l *menuLogic) DeleteItem(ctx context.Context, id int64) error {
	item, err := l.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	if err := l.menuRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	// Template goes too: a deleted dish must not resurrect on restore.
	if err := l.templatesRepo.Delete(ctx, helper.SanitizeTemplateID(item.Name)); err != nil {
		l.logger.Warn("DeleteItem: failed to delete template", zap.Error(err), zap.Int64("itemID", id))
	}

	l.recorder.Record(ctx, constants.ActivityItemDeleted, fmt.Sprintf("%d", id),
		fmt.Sprintf("Deleted %s", item.Name))
	return nil
}

// RestoreDefaults reseeds the menu from the stored templates inside one
// transaction. Restored items come back with zeroed counters and unavailable;
// stock has to be entered for the day before they can be sold. Items already
// on the menu (matched by template id) are left untouched.
func (l *menuLogic) RestoreDefaults(ctx context.Context) ([]*models.MenuItem, error) {
	result, err := l.txManager.WithTransaction(ctx, func(sessCtx context.Context) (interface{}, error) {
		templates, err := l.templatesRepo.List(sessCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}
		if len(templates) == 0 {
			return []*models.MenuItem{}, nil
		}

		existing, err := l.menuRepo.List(sessCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to list menu: %w", err)
		}
		present := make(map[string]struct{}, len(existing))
		for _, item := range existing {
			present[helper.SanitizeTemplateID(item.Name)] = struct{}{}
		}

		missing := make([]*models.MenuTemplate, 0, len(templates))
		for _, tpl := range templates {
			if _, ok := present[tpl.ID]; !ok {
				missing = append(missing, tpl)
			}
		}
		if len(missing) == 0 {
			return []*models.MenuItem{}, nil
		}

		// One block reservation covers every restored item; the ids stay
		// contiguous and the counter moves once.
		start, err := l.countersRepo.NextBlock(sessCtx, constants.CounterMenuItems, int64(len(missing)))
		if err != nil {
			return nil, fmt.Errorf("failed to reserve item ids: %w", err)
		}

		now := time.Now()
		restored := make([]*models.MenuItem, 0, len(missing))
		for i, tpl := range missing {
			restored = append(restored, &models.MenuItem{
				ID:               start + int64(i),
				Name:             tpl.Name,
				Category:         tpl.Category,
				Price:            tpl.Price,
				PreparedQuantity: 0,
				SoldQuantity:     0,
				Available:        false,
				PreparedDate:     helper.DateString(now),
				CreatedAt:        now,
				UpdatedAt:        now,
			})
		}
		if err := l.menuRepo.InsertMany(sessCtx, restored); err != nil {
			return nil, fmt.Errorf("failed to insert restored items: %w", err)
		}
		return restored, nil
	})
	if err != nil {
		l.logger.Error("RestoreDefaults: transaction failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	restored := result.([]*models.MenuItem)
	if len(restored) > 0 {
		l.recorder.Record(ctx, constants.ActivityMenuRestored, "",
			fmt.Sprintf("Restored %d items from templates", len(restored)))
	}
	return restored, nil
}

func (l *menuLogic) GetMenu(ctx context.Context) ([]*models.MenuItem, error) {
	return l.menuRepo.List(ctx)
}

func (l *menuLogic) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := l.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func templateFor(item *models.MenuItem) *models.MenuTemplate {
	return &models.MenuTemplate{
		ID:       helper.SanitizeTemplateID(item.Name),
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
	}
}

func availabilityWord(available bool) string {
	if available {
		return "available"
	}
	return "unavailable"
}

var MenuLogicProviderSet = wire.NewSet(NewMenuLogic, wire.Bind(new(MenuLogic), new(*menuLogic)))
