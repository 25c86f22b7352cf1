package pgsql_test

import (
	"context"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/repositories/database/pgsql"
	"github.com/SscSPs/sales_dashboard/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs against a real database named by TEST_PGSQL_URL.
type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func (suite *RepositoryTestSuite) SetupSuite() {
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		suite.T().Skip("TEST_PGSQL_URL not set")
	}
	suite.ctx = context.Background()
	suite.Require().NoError(database.RunMigrations(url, slog.Default()))

	pool, err := database.NewPgxPool(suite.ctx, url, true)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repos = pgsql.NewRepositoryProvider(pool)
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.pool != nil {
		database.ClosePgxPool(suite.pool)
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	rows := []domain.Transaction{
		{ID: "a", Title: "A", Price: decimal.NewFromInt(50), Category: "x", Sold: true, DateOfSale: "March 1 2024"},
		{ID: "b", Title: "B", Price: decimal.NewFromInt(150), Category: "y", Sold: false, DateOfSale: "March 2 2024"},
		{ID: "c", Title: "C", Description: "Fits 15 inch laptops", Price: decimal.RequireFromString("109.95"), Category: "y", Sold: true, DateOfSale: "2021-04-27T20:29:54+05:30"},
	}
	for i := range rows {
		rows[i].Position = i
		rows[i].SaleMonth = domain.SaleMonthOf(rows[i].DateOfSale)
	}
	suite.Require().NoError(suite.repos.TransactionRepo.ReplaceAll(suite.ctx, rows))
}

func (suite *RepositoryTestSuite) TestMarchScenario() {
	month := domain.ParseMonthFilter("March")

	stats, err := suite.repos.ReportingRepo.GetStatistics(suite.ctx, month)
	suite.Require().NoError(err)
	suite.Equal(int64(1), stats.TotalSold)
	suite.Equal(int64(1), stats.TotalUnsold)
	suite.True(stats.TotalSales.Equal(decimal.NewFromInt(50)), stats.TotalSales.String())

	counts := map[string]int64{}
	for _, b := range domain.DefaultPriceBuckets() {
		count, err := suite.repos.ReportingRepo.CountInPriceRange(suite.ctx, month, b)
		suite.Require().NoError(err)
		counts[b.Label()] = count
	}
	suite.Equal(int64(1), counts["0-100"])
	suite.Equal(int64(1), counts["101-200"])
	suite.Equal(int64(0), counts["201-300"])

	categories, err := suite.repos.ReportingRepo.GetCategoryBreakdown(suite.ctx, month)
	suite.Require().NoError(err)
	suite.Equal([]domain.CategoryCount{{Category: "x", Count: 1}, {Category: "y", Count: 1}}, categories)
}

func (suite *RepositoryTestSuite) TestEmptyMonth() {
	stats, err := suite.repos.ReportingRepo.GetStatistics(suite.ctx, domain.ParseMonthFilter("July"))
	suite.Require().NoError(err)
	suite.Zero(stats.TotalSold)
	suite.Zero(stats.TotalUnsold)
	suite.True(stats.TotalSales.IsZero())
}

func (suite *RepositoryTestSuite) TestListMatchesParsedMonthAndSearch() {
	filter := domain.TransactionFilter{Month: domain.ParseMonthFilter("April"), Search: "LAPTOP", Limit: 10}

	page, err := suite.repos.TransactionRepo.ListTransactions(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("C", page[0].Title)
	suite.True(page[0].Price.Equal(decimal.RequireFromString("109.95")))

	total, err := suite.repos.TransactionRepo.CountTransactions(suite.ctx, domain.TransactionFilter{Search: "109.9"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *RepositoryTestSuite) TestHugeOffsetReturnsEmptyWindow() {
	filter := domain.TransactionFilter{Month: domain.ParseMonthFilter("March"), Offset: math.MaxInt, Limit: 10}

	page, err := suite.repos.TransactionRepo.ListTransactions(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Empty(page)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
