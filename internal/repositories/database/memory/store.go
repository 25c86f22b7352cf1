package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/models"
	"github.com/SscSPs/sales_dashboard/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// Store keeps the whole dataset in memory, ordered by feed position.
type Store struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.ReportingRepository         = (*Store)(nil)
)

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: store,
		ReportingRepo:   store,
	}
}

// each calls fn for every stored transaction accepted by match, holding the read lock.
func (s *Store) each(ctx context.Context, match func(domain.Transaction) bool, fn func(domain.Transaction)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.transactions {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := mapping.ToDomainTransaction(m)
		if match(t) {
			fn(t)
		}
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	result := []domain.Transaction{}
	skipped := 0
	err := s.each(ctx, filter.Matches, func(t domain.Transaction) {
		if skipped < filter.Offset {
			skipped++
			return
		}
		if filter.Limit > 0 && len(result) >= filter.Limit {
			return
		}
		result = append(result, t)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	var total int64
	err := s.each(ctx, filter.Matches, func(domain.Transaction) { total++ })
	return total, err
}

// ReplaceAll swaps the dataset under the write lock.
func (s *Store) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		next[i] = mapping.ToModelTransaction(t)
	}
	sort.SliceStable(next, func(i, j int) bool { return next[i].Position < next[j].Position })

	s.mu.Lock()
	s.transactions = next
	s.mu.Unlock()
	return nil
}

func (s *Store) GetStatistics(ctx context.Context, month domain.MonthFilter) (domain.Statistics, error) {
	stats := domain.Statistics{TotalSales: decimal.Zero}
	err := s.each(ctx, monthMatcher(month), func(t domain.Transaction) {
		if t.Sold {
			stats.TotalSold++
			stats.TotalSales = stats.TotalSales.Add(t.Price)
			return
		}
		stats.TotalUnsold++
	})
	if err != nil {
		return domain.Statistics{}, err
	}
	return stats, nil
}

func (s *Store) CountInPriceRange(ctx context.Context, month domain.MonthFilter, bucket domain.PriceBucket) (int64, error) {
	var count int64
	err := s.each(ctx, monthMatcher(month), func(t domain.Transaction) {
		if bucket.Contains(t.Price) {
			count++
		}
	})
	return count, err
}

func (s *Store) GetCategoryBreakdown(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	counts := map[string]int64{}
	err := s.each(ctx, monthMatcher(month), func(t domain.Transaction) {
		counts[t.Category]++
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result, nil
}

func monthMatcher(month domain.MonthFilter) func(domain.Transaction) bool {
	return func(t domain.Transaction) bool {
		return month.Matches(t.DateOfSale, t.SaleMonth)
	}
}
