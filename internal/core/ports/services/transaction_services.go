package services

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactions returns one page of matching records together with the total match count
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
}
