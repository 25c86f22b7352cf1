package mongodb_test

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/repositories/database/mongodb"
	"github.com/SscSPs/sales_dashboard/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
)

// RepositoryTestSuite runs against a real server named by TEST_MONGO_URI, in a throwaway database.
type RepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	client *mongo.Client
	db     *mongo.Database
	repos  portsrepo.RepositoryProvider
}

func (suite *RepositoryTestSuite) SetupSuite() {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		suite.T().Skip("TEST_MONGO_URI not set")
	}
	suite.ctx = context.Background()

	client, err := database.NewMongoClient(suite.ctx, uri, true)
	suite.Require().NoError(err)
	suite.client = client
	suite.db = client.Database("sales_dashboard_test_" + uuid.NewString()[:8])

	repos, err := mongodb.NewRepositoryProvider(suite.ctx, suite.db.Collection("transactions"))
	suite.Require().NoError(err)
	suite.repos = repos
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.client == nil {
		return
	}
	_ = suite.db.Drop(suite.ctx)
	database.CloseMongoClient(suite.ctx, suite.client)
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
