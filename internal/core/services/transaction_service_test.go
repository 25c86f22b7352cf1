package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/sales_dashboard/internal/core/ports/services"
	"github.com/SscSPs/sales_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	filter := domain.TransactionFilter{
		Month:  domain.ParseMonthFilter("March"),
		Search: "shirt",
		Offset: 10,
		Limit:  10,
	}
	rows := []domain.Transaction{
		{ID: "a", Title: "Blue shirt", Price: decimal.NewFromInt(50)},
	}

	suite.mockRepo.On("ListTransactions", mock.Anything, filter).Return(rows, nil).Once()
	suite.mockRepo.On("CountTransactions", mock.Anything, filter).Return(int64(11), nil).Once()

	page, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().NoError(err)
	suite.Require().NotNil(page)
	suite.Equal(rows, page.Transactions)
	suite.Equal(int64(11), page.Total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyWindowIsNotNil() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Offset: 100, Limit: 10}

	suite.mockRepo.On("ListTransactions", mock.Anything, filter).Return(nil, nil).Once()
	suite.mockRepo.On("CountTransactions", mock.Anything, filter).Return(int64(60), nil).Once()

	page, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(page.Transactions)
	suite.Empty(page.Transactions)
	suite.Equal(int64(60), page.Total)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_CountError() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Limit: 10}

	suite.mockRepo.On("ListTransactions", mock.Anything, filter).Return([]domain.Transaction{}, nil).Maybe()
	suite.mockRepo.On("CountTransactions", mock.Anything, filter).Return(int64(0), assert.AnError).Once()

	page, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ListError() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Limit: 10}

	suite.mockRepo.On("ListTransactions", mock.Anything, filter).Return(nil, assert.AnError).Once()
	suite.mockRepo.On("CountTransactions", mock.Anything, filter).Return(int64(3), nil).Maybe()

	page, err := suite.service.ListTransactions(ctx, filter)

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
