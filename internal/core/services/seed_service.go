package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/google/uuid"
)

type seedService struct {
	BaseService
	source          portsrepo.SeedSource
	transactionRepo portsrepo.TransactionWriter
}

// NewSeedService creates a service that replaces the store contents with the upstream feed
func NewSeedService(source portsrepo.SeedSource, repo portsrepo.TransactionWriter) portssvc.SeedSvc {
	return &seedService{source: source, transactionRepo: repo}
}

var _ portssvc.SeedSvc = (*seedService)(nil)

// Initialize fetches the feed, assigns ids, feed positions and sale months, then replaces
// everything in the store.
func (s *seedService) Initialize(ctx context.Context) (int, error) {
	fetched, err := s.source.FetchTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch seed data")
		return 0, fmt.Errorf("failed to fetch seed data: %w", err)
	}

	transactions := make([]domain.Transaction, len(fetched))
	for i, t := range fetched {
		t.ID = uuid.NewString()
		t.Position = i
		t.SaleMonth = domain.SaleMonthOf(t.DateOfSale)
		transactions[i] = t
	}

	if err := s.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
		s.LogError(ctx, err, "Failed to store seed data", slog.Int("count", len(transactions)))
		return 0, fmt.Errorf("failed to store seed data: %w", err)
	}

	s.LogInfo(ctx, "Database initialized with seed data", slog.Int("count", len(transactions)))
	return len(transactions), nil
}
