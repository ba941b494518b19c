package models

import "time"

// MenuItem is the stock ledger entry for one dish. The document id is a
// sequential integer minted from the menu_items counter so receipts and
// activity entries can reference items with short stable numbers.
type MenuItem struct {
	ID               int64     `bson:"_id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Category         string    `bson:"category" json:"category"`
	Price            float64   `bson:"price" json:"price"`
	PreparedQuantity int64     `bson:"prepared_quantity" json:"preparedQuantity"`
	SoldQuantity     int64     `bson:"sold_quantity" json:"soldQuantity"`
	Available        bool      `bson:"available" json:"available"`
	PreparedDate     string    `bson:"prepared_date" json:"preparedDate"` // YYYY-MM-DD
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}

// Remaining is the sellable stock for the current prepared batch.
func (m *MenuItem) Remaining() int64 {
	return m.PreparedQuantity - m.SoldQuantity
}

// MenuTemplate mirrors a MenuItem minus its stock counters. Templates survive
// day-to-day edits so RestoreDefaults can reseed a wiped menu. The id is
// derived from the sanitized uppercase name, which makes template upserts
// idempotent per dish.
type MenuTemplate struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Price     float64   `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
