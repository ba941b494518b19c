package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/logic"
)

// MenuService exposes menu lifecycle operations over HTTP.
type MenuService struct {
	menuLogic logic.MenuLogic
	logger    *zap.Logger
}

func NewMenuService(menuLogic logic.MenuLogic, logger *zap.Logger) *MenuService {
	return &MenuService{
		menuLogic: menuLogic,
		logger:    logger.Named("MenuService"),
	}
}

type addItemRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Price            float64 `json:"price"`
	PreparedQuantity int64   `json:"preparedQuantity"`
}

type updateItemRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	Price            float64 `json:"price"`
	PreparedQuantity int64   `json:"preparedQuantity"`
	Available        bool    `json:"available"`
}

type updateStockRequest struct {
	PreparedQuantity int64 `json:"preparedQuantity"`
}

func itemIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

// ListMenu handles GET /api/v1/menu.
func (s *MenuService) ListMenu(c *gin.Context) {
	items, err := s.menuLogic.GetMenu(c.Request.Context())
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, items)
}

// GetItem handles GET /api/v1/menu/:id.
func (s *MenuService) GetItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	item, err := s.menuLogic.GetItem(c.Request.Context(), id)
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, item)
}

// AddItem handles POST /api/v1/menu.
func (s *MenuService) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	category := constants.ParseCategory(req.Category)
	if category == constants.CategoryUnknown {
		Fail(c, http.StatusBadRequest, "unknown category: "+req.Category)
		return
	}

	item, err := s.menuLogic.AddItem(c.Request.Context(), dto.NewAddItemRequest(req.Name, category, req.Price, req.PreparedQuantity))
	if err != nil {
		FailFromError(c, err)
		return
	}
	Created(c, item)
}

// UpdateItem handles PUT /api/v1/menu/:id.
func (s *MenuService) UpdateItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	category := constants.ParseCategory(req.Category)
	if category == constants.CategoryUnknown {
		Fail(c, http.StatusBadRequest, "unknown category: "+req.Category)
		return
	}

	item, err := s.menuLogic.UpdateItem(c.Request.Context(),
		dto.NewUpdateItemRequest(id, req.Name, category, req.Price, req.PreparedQuantity, req.Available))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, item)
}

// UpdateStock handles PUT /api/v1/menu/:id/stock.
func (s *MenuService) UpdateStock(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := s.menuLogic.UpdateStock(c.Request.Context(), id, req.PreparedQuantity)
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, item)
}

// ToggleAvailability handles POST /api/v1/menu/:id/toggle.
func (s *MenuService) ToggleAvailability(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	item, err := s.menuLogic.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, item)
}

// DeleteItem handles DELETE /api/v1/menu/:id.
func (s *MenuService) DeleteItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	if err := s.menuLogic.DeleteItem(c.Request.Context(), id); err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, gin.H{"deleted": id})
}

// RestoreDefaults handles POST /api/v1/menu/restore.
func (s *MenuService) RestoreDefaults(c *gin.Context) {
	restored, err := s.menuLogic.RestoreDefaults(c.Request.Context())
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, restored)
}
