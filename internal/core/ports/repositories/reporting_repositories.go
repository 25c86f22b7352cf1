package repositories

import (
	"context"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
)

// ReportingRepository defines aggregate queries over the records of a month
type ReportingRepository interface {
	// GetStatistics returns sold/unsold counts and the sum of sold prices
	GetStatistics(ctx context.Context, month domain.MonthFilter) (domain.Statistics, error)

	// CountInPriceRange counts the records whose price lies inside the bucket, bounds included
	CountInPriceRange(ctx context.Context, month domain.MonthFilter, bucket domain.PriceBucket) (int64, error)

	// GetCategoryBreakdown groups records by category label
	GetCategoryBreakdown(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error)
}
