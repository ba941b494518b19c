package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillItem is the denormalized snapshot of one cart line at sale time.
// Later edits to the MenuItem must never change a committed BillItem.
type BillItem struct {
	ItemID   int64   `bson:"item_id" json:"itemId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Total    float64 `bson:"total" json:"total"`
}

// Bill is a committed order. Created exactly once by the billing workflow,
// transitioned at most once (Paid -> Cancelled), never deleted.
type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BillNumber  string             `bson:"bill_number" json:"billNumber"`
	Items       []BillItem         `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	GSTEnabled  bool               `bson:"gst_enabled" json:"gstEnabled"`
	GSTAmount   float64            `bson:"gst_amount" json:"gstAmount"`
	TotalAmount float64            `bson:"total_amount" json:"totalAmount"`
	PaymentMode string             `bson:"payment_mode" json:"paymentMode"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	CancelledAt *time.Time         `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}
