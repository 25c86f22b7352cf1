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

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	buckets       []domain.PriceBucket
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithPriceBuckets overrides the histogram buckets. An empty slice keeps the defaults.
func WithPriceBuckets(buckets []domain.PriceBucket) ReportingServiceOption {
	return func(s *reportingService) {
		if len(buckets) > 0 {
			s.buckets = buckets
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		buckets:       domain.DefaultPriceBuckets(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Statistics returns sold/unsold counts and total sales for the month
func (s *reportingService) Statistics(ctx context.Context, month domain.MonthFilter) (*domain.Statistics, error) {
	stats, err := s.reportingRepo.GetStatistics(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve statistics", slog.String("month", month.Raw))
		return nil, fmt.Errorf("failed to retrieve statistics: %w", err)
	}

	s.LogDebug(ctx, "Statistics generated",
		slog.String("month", month.Raw),
		slog.Int64("total_sold", stats.TotalSold),
		slog.Int64("total_unsold", stats.TotalUnsold))
	return &stats, nil
}

// PriceRanges counts every bucket with its own query. The queries run concurrently and share a
// cancelable context; the first failure cancels the rest and fails the whole histogram.
func (s *reportingService) PriceRanges(ctx context.Context, month domain.MonthFilter) ([]domain.PriceRangeCount, error) {
	result := make([]domain.PriceRangeCount, len(s.buckets))

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range s.buckets {
		i, bucket := i, bucket
		result[i].Bucket = bucket
		g.Go(func() error {
			count, err := s.reportingRepo.CountInPriceRange(gctx, month, bucket)
			if err != nil {
				return fmt.Errorf("failed to count price range %s: %w", bucket.Label(), err)
			}
			result[i].Count = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build price range histogram", slog.String("month", month.Raw))
		return nil, err
	}

	s.LogDebug(ctx, "Price range histogram generated",
		slog.String("month", month.Raw),
		slog.Int("buckets", len(result)))
	return result, nil
}

// Categories counts the records of the month per category label
func (s *reportingService) Categories(ctx context.Context, month domain.MonthFilter) ([]domain.CategoryCount, error) {
	categories, err := s.reportingRepo.GetCategoryBreakdown(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category breakdown", slog.String("month", month.Raw))
		return nil, fmt.Errorf("failed to retrieve category breakdown: %w", err)
	}
	if categories == nil {
		categories = []domain.CategoryCount{}
	}

	s.LogDebug(ctx, "Category breakdown generated",
		slog.String("month", month.Raw),
		slog.Int("categories", len(categories)))
	return categories, nil
}
