package repositories

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns the window [filter.Offset, filter.Offset+filter.Limit) of matching records in feed order.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// CountTransactions counts every record matching the filter, ignoring Offset and Limit.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// ReplaceAll deletes every stored record and inserts the given ones.
	ReplaceAll(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
