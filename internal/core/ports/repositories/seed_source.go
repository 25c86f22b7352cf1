package repositories

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
)

// SeedSource provides the canonical dataset used to (re)populate the store.
type SeedSource interface {
	FetchTransactions(ctx context.Context) ([]domain.Transaction, error)
}
