package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/SscSPs/sales_dashboard/internal/dto"
	"github.com/SscSPs/sales_dashboard/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockService = new(MockTransactionService)

	api := suite.router.Group("/api")
	handlers.RegisterTransactionRoutes(api, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{
			{ID: "t1", Title: "Backpack", Description: "Fits laptops", Price: decimal.RequireFromString("109.95"), Category: "men's clothing", Sold: true, DateOfSale: "2021-03-27T20:29:54+05:30"},
		},
		Total: 21,
	}
	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Month.Raw == "March" && f.Month.Number == 3 && f.Search == "pack" && f.Offset == 10 && f.Limit == 10
	})).Return(page, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions?month=March&search=pack&page=2&perPage=10", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(21), body.Total)
	suite.Equal(2, body.Page)
	suite.Equal(10, body.PerPage)
	suite.Require().Len(body.Transactions, 1)
	suite.Equal("t1", body.Transactions[0].ID)
	suite.Equal(109.95, body.Transactions[0].Price)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_CoercesBadPagination() {
	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Offset == 0 && f.Limit == 10 && f.Month.IsEmpty()
	})).Return(&domain.TransactionPage{Transactions: []domain.Transaction{}}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions?page=abc&perPage=-5", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"transactions":[],"total":0,"page":1,"perPage":10}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ServiceError() {
	suite.mockService.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/transactions", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to list transactions"}`, w.Body.String())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
