package handlers_test

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Statistics(ctx context.Context, month domain.MonthFilter) (*domain.Statistics, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockReportingService) PriceRanges(ctx context.Context, month domain.MonthFilter) ([]domain.PriceRangeCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceRangeCount), args.Error(1)
}

func (m *MockReportingService) Categories(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

// --- Mock SeedService ---
type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) Initialize(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
