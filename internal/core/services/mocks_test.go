package services_test

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetStatistics(ctx context.Context, month domain.MonthFilter) (domain.Statistics, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(domain.Statistics), args.Error(1)
}

func (m *MockReportingRepository) CountInPriceRange(ctx context.Context, month domain.MonthFilter, bucket domain.PriceBucket) (int64, error) {
	args := m.Called(ctx, month, bucket)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryBreakdown(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

// --- Mock SeedSource ---
type MockSeedSource struct {
	mock.Mock
}

func (m *MockSeedSource) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
