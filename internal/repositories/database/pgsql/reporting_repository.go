package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetStatistics sums the sold prices and counts sold/unsold rows of the month in one pass
func (r *reportingRepository) GetStatistics(ctx context.Context, month domain.MonthFilter) (domain.Statistics, error) {
	w := (&whereBuilder{}).month(month)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE sold) AS total_sold,
			COUNT(*) FILTER (WHERE NOT sold) AS total_unsold,
			COALESCE(SUM(price) FILTER (WHERE sold), 0) AS total_sales
		FROM transactions` + w.String()

	var stats domain.Statistics
	var totalSales pgtype.Numeric
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&stats.TotalSold, &stats.TotalUnsold, &totalSales); err != nil {
		return domain.Statistics{}, fmt.Errorf("error querying statistics: %w", err)
	}
	stats.TotalSales = decimalFromNumeric(totalSales)
	return stats, nil
}

// CountInPriceRange counts the rows of the month whose price lies in the bucket
func (r *reportingRepository) CountInPriceRange(ctx context.Context, month domain.MonthFilter, bucket domain.PriceBucket) (int64, error) {
	w := (&whereBuilder{}).month(month).priceBetween(bucket)
	query := "SELECT COUNT(*) FROM transactions" + w.String()

	var count int64
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting price range %s: %w", bucket.Label(), err)
	}
	return count, nil
}

// GetCategoryBreakdown groups the rows of the month by category, ordered by label
func (r *reportingRepository) GetCategoryBreakdown(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	w := (&whereBuilder{}).month(month)
	query := "SELECT category, COUNT(*) FROM transactions" + w.String() + " GROUP BY category ORDER BY category"

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category breakdown: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryCount
	for rows.Next() {
		var row domain.CategoryCount
		if err := rows.Scan(&row.Category, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return result, nil
}
