package logic

import "errors"

var (
	ErrEmptyCart         = errors.New("cart must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be positive")
	ErrItemNotFound      = errors.New("menu item not found")
	ErrBillNotFound      = errors.New("bill not found")
	ErrAlreadyCancelled  = errors.New("bill has already been cancelled")
	ErrInvalidName       = errors.New("item name must not be empty")
	ErrInvalidPrice      = errors.New("item price must not be negative")
	ErrInvalidStock      = errors.New("prepared quantity must not be negative")
	ErrInvalidGST        = errors.New("gst percentage must be between 0 and 100")
	ErrTransactionFailed = errors.New("transaction failed")
)
