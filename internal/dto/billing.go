package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mukunt07/subramaniya-mess/internal/constants"
)

// --- CreateBill DTOs ---

func NewCartLine(itemID int64, quantity int64) *CartLine {
	return &CartLine{
		itemID:   itemID,
		quantity: quantity,
	}
}

// CartLine is one requested line of a new bill. The server re-reads the
// item's name and price; the client only chooses what and how many.
type CartLine struct {
	itemID   int64
	quantity int64
}

func (l *CartLine) GetItemID() int64 {
	return l.itemID
}

func (l *CartLine) GetQuantity() int64 {
	return l.quantity
}

func NewCreateBillRequest(items []*CartLine, paymentMode constants.PaymentMode, gstEnabled bool) *CreateBillRequest {
	return &CreateBillRequest{
		items:       items,
		paymentMode: paymentMode,
		gstEnabled:  gstEnabled,
	}
}

type CreateBillRequest struct {
	items       []*CartLine
	paymentMode constants.PaymentMode
	gstEnabled  bool
}

func (r *CreateBillRequest) GetItems() []*CartLine {
	return r.items
}

func (r *CreateBillRequest) GetPaymentMode() constants.PaymentMode {
	return r.paymentMode
}

func (r *CreateBillRequest) GetGSTEnabled() bool {
	return r.gstEnabled
}

// --- CancelOrder DTOs ---

func NewCancelOrderRequest(billID primitive.ObjectID) *CancelOrderRequest {
	return &CancelOrderRequest{billID: billID}
}

type CancelOrderRequest struct {
	billID primitive.ObjectID
}

func (r *CancelOrderRequest) GetBillID() primitive.ObjectID {
	return r.billID
}

// --- ListBills DTOs ---

func NewListBillsRequest(status string, page, pageSize int) *ListBillsRequest {
	return &ListBillsRequest{
		status:   status,
		page:     page,
		pageSize: pageSize,
	}
}

type ListBillsRequest struct {
	status   string
	page     int
	pageSize int
}

func (r *ListBillsRequest) GetStatus() string {
	return r.status
}

func (r *ListBillsRequest) GetPage() int {
	return r.page
}

func (r *ListBillsRequest) GetPageSize() int {
	return r.pageSize
}
