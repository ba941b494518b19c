package mongodb

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrStaleWrite means a guarded stock update matched fewer documents than
	// expected. Inside a transaction this indicates a concurrent writer; the
	// transaction manager treats it as an abort, not a business failure.
	ErrStaleWrite = errors.New("stale stock write")
)

// InsufficientStockError reports a reserve attempt that would push sold
// quantity past prepared quantity. Available carries the remaining stock so
// the caller can tell the operator how many units are still sellable.
type InsufficientStockError struct {
	ItemName  string
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for " + e.ItemName
}
