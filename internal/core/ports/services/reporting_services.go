package services

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
)

// ReportingService defines the monthly aggregate views over the dataset
type ReportingService interface {
	// Statistics returns sold/unsold counts and total sales for a month
	Statistics(ctx context.Context, month domain.MonthFilter) (*domain.Statistics, error)

	// PriceRanges counts the records of a month per configured price bucket, in bucket order
	PriceRanges(ctx context.Context, month domain.MonthFilter) ([]domain.PriceRangeCount, error)

	// Categories counts the records of a month per category
	Categories(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error)
}
