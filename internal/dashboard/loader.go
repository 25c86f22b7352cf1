package dashboard

import (
	"context"
	"log/slog"

	"github.com/SscSPs/sales_dashboard/internal/dto"
	"github.com/SscSPs/sales_dashboard/internal/middleware"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the backend the dashboard reads.
type API interface {
	Transactions(ctx context.Context, month, search string, page, perPage int) (*dto.ListTransactionsResponse, error)
	Statistics(ctx context.Context, month string) (*dto.StatisticsResponse, error)
	PriceRanges(ctx context.Context, month string) ([]dto.PriceRangeResponse, error)
	Categories(ctx context.Context, month string) ([]dto.CategoryResponse, error)
}

// Request selects what the page shows.
type Request struct {
	Month   string
	Search  string
	Page    int
	PerPage int
}

// Page holds the four sections of the dashboard. Each section carries its own error so a
// failing request never blanks the others.
type Page struct {
	Request Request

	Transactions    *dto.ListTransactionsResponse
	TransactionsErr error

	Statistics    *dto.StatisticsResponse
	StatisticsErr error

	PriceRanges    []dto.PriceRangeResponse
	PriceRangesErr error

	Categories    []dto.CategoryResponse
	CategoriesErr error
}

// Loader fetches all sections of a page concurrently.
type Loader struct {
	api API
}

func NewLoader(api API) *Loader {
	return &Loader{api: api}
}

// Load starts the four requests together and waits for all of them.
func (l *Loader) Load(ctx context.Context, req Request) *Page {
	logger := middleware.GetLoggerFromCtx(ctx)
	page := &Page{Request: req}

	var g errgroup.Group
	g.Go(func() error {
		page.Transactions, page.TransactionsErr = l.api.Transactions(ctx, req.Month, req.Search, req.Page, req.PerPage)
		if page.TransactionsErr != nil {
			logger.Error("Failed to load transactions", slog.String("month", req.Month), slog.String("error", page.TransactionsErr.Error()))
		}
		return nil
	})
	g.Go(func() error {
		page.Statistics, page.StatisticsErr = l.api.Statistics(ctx, req.Month)
		if page.StatisticsErr != nil {
			logger.Error("Failed to load statistics", slog.String("month", req.Month), slog.String("error", page.StatisticsErr.Error()))
		}
		return nil
	})
	g.Go(func() error {
		page.PriceRanges, page.PriceRangesErr = l.api.PriceRanges(ctx, req.Month)
		if page.PriceRangesErr != nil {
			logger.Error("Failed to load price ranges", slog.String("month", req.Month), slog.String("error", page.PriceRangesErr.Error()))
		}
		return nil
	})
	g.Go(func() error {
		page.Categories, page.CategoriesErr = l.api.Categories(ctx, req.Month)
		if page.CategoriesErr != nil {
			logger.Error("Failed to load categories", slog.String("month", req.Month), slog.String("error", page.CategoriesErr.Error()))
		}
		return nil
	})
	_ = g.Wait()

	return page
}
