package db

import "context"

// NoOpTransactionManager is a transaction manager that does nothing.
// It's useful for development against a standalone mongod, which cannot run
// multi-document transactions.
type NoOpTransactionManager struct{}

// NewNoOpTransactionManager creates a new NoOpTransactionManager.
func NewNoOpTransactionManager() TransactionManager {
	return &NoOpTransactionManager{}
}

// WithTransaction simply executes the function without a real transaction.
func (n *NoOpTransactionManager) WithTransaction(ctx context.Context, fn func(sessCtx context.Context) (interface{}, error)) (interface{}, error) {
	return fn(ctx)
}
