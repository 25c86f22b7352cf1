package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions fetches the requested window and the total match count concurrently.
// Both queries must succeed.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	var (
		transactions []domain.Transaction
		total        int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactionRepo.ListTransactions(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.transactionRepo.CountTransactions(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to query transactions",
			slog.String("month", filter.Month.Raw),
			slog.String("search", filter.Search))
		return nil, err
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.Int("count", len(transactions)),
		slog.Int64("total", total))
	return &domain.TransactionPage{Transactions: transactions, Total: total}, nil
}
