package service

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
	"github.com/Mukunt07/subramaniya-mess/internal/dto"
	"github.com/Mukunt07/subramaniya-mess/internal/logic"
)

// BillingService exposes the billing workflow over HTTP.
type BillingService struct {
	billingLogic logic.BillingLogic
	logger       *zap.Logger
}

func NewBillingService(billingLogic logic.BillingLogic, logger *zap.Logger) *BillingService {
	return &BillingService{
		billingLogic: billingLogic,
		logger:       logger.Named("BillingService"),
	}
}

type cartLineRequest struct {
	ItemID   int64 `json:"itemId" binding:"required"`
	Quantity int64 `json:"quantity" binding:"required"`
}

type createBillRequest struct {
	Items       []cartLineRequest `json:"items" binding:"required"`
	PaymentMode string            `json:"paymentMode" binding:"required"`
	GSTEnabled  bool              `json:"gstEnabled"`
}

// CreateBill handles POST /api/v1/bills.
func (s *BillingService) CreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	paymentMode := constants.ParsePaymentMode(req.PaymentMode)
	if paymentMode == constants.PaymentModeUnknown {
		Fail(c, http.StatusBadRequest, "unknown payment mode: "+req.PaymentMode)
		return
	}

	lines := make([]*dto.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, dto.NewCartLine(item.ItemID, item.Quantity))
	}

	bill, err := s.billingLogic.CreateBill(c.Request.Context(), dto.NewCreateBillRequest(lines, paymentMode, req.GSTEnabled))
	if err != nil {
		FailFromError(c, err)
		return
	}
	Created(c, bill)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *BillingService) CancelOrder(c *gin.Context) {
	billID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	bill, err := s.billingLogic.CancelOrder(c.Request.Context(), dto.NewCancelOrderRequest(billID))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, bill)
}

// GetBill handles GET /api/v1/bills/:id.
func (s *BillingService) GetBill(c *gin.Context) {
	billID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "invalid bill id")
		return
	}

	bill, err := s.billingLogic.GetBill(c.Request.Context(), billID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, bill)
}

// ListOrders handles GET /api/v1/orders.
func (s *BillingService) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	status := c.Query("status")
	if status != "" && constants.ParseBillStatus(status) == constants.BillStatusUnknown {
		Fail(c, http.StatusBadRequest, "unknown status: "+status)
		return
	}

	result, err := s.billingLogic.GetOrders(c.Request.Context(), dto.NewListBillsRequest(status, page, pageSize))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, result)
}
