package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tpaylabs/readiness_backend/internal/apperrors"
	"github.com/tpaylabs/readiness_backend/internal/core/domain"
	portssvc "github.com/tpaylabs/readiness_backend/internal/core/ports/services"
	"github.com/tpaylabs/readiness_backend/internal/core/services"
	"github.com/tpaylabs/readiness_backend/internal/dto"
	"github.com/tpaylabs/readiness_backend/internal/utils/pagination"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	txns     []domain.Transaction
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)

	base := time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)
	suite.txns = make([]domain.Transaction, 0, 7)
	for i := 0; i < 7; i++ {
		suite.txns = append(suite.txns, domain.Transaction{
			ID:     fmt.Sprintf("t%d", i),
			Date:   base.Add(-time.Duration(i) * time.Hour),
			Amount: decimal.NewFromInt(int64(10 * (i + 1))),
			Status: domain.StatusSuccess,
		})
	}
}

func (suite *TransactionServiceTestSuite) ids(resp *dto.ListTransactionsResponse) []string {
	out := make([]string, 0, len(resp.Transactions))
	for _, tx := range resp.Transactions {
		out = append(out, tx.ID)
	}
	return out
}

func (suite *TransactionServiceTestSuite) TestListTransactions_All() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.txns, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 7)
	suite.Nil(resp.NextToken)
	suite.Equal("BDT 10.00", resp.Transactions[0].FormattedAmount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PagesThroughEverything() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.txns, nil)

	first, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 3})
	suite.Require().NoError(err)
	suite.Equal([]string{"t0", "t1", "t2"}, suite.ids(first))
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 3, NextToken: *first.NextToken})
	suite.Require().NoError(err)
	suite.Equal([]string{"t3", "t4", "t5"}, suite.ids(second))
	suite.Require().NotNil(second.NextToken)

	third, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 3, NextToken: *second.NextToken})
	suite.Require().NoError(err)
	suite.Equal([]string{"t6"}, suite.ids(third))
	suite.Nil(third.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ExactPageHasNoToken() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.txns, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 7})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 7)
	suite.Nil(resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_CursorForVanishedItem() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.txns, nil).Once()

	// Points between t2 and t3 at an id that no longer exists.
	token := pagination.EncodeToken(suite.txns[2].Date.Add(-30*time.Minute), "gone")
	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{NextToken: token})

	suite.Require().NoError(err)
	suite.Equal([]string{"t3", "t4", "t5", "t6"}, suite.ids(resp))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidToken() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(suite.txns, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{NextToken: "%%%"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NegativeLimit() {
	resp, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Limit: -1})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(nil, fmt.Errorf("boom")).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.Nil(resp)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	expected := &suite.txns[1]
	suite.mockRepo.On("FindTransactionByID", ctx, "t1").Return(expected, nil).Once()

	tx, err := suite.service.GetTransactionByID(ctx, "t1")

	suite.Require().NoError(err)
	suite.Equal(expected, tx)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionByID", ctx, "nope").Return(nil, fmt.Errorf("%w: nope", apperrors.ErrNotFound)).Once()

	tx, err := suite.service.GetTransactionByID(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(tx)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_EmptyID() {
	tx, err := suite.service.GetTransactionByID(context.Background(), "  ")

	suite.Require().Error(err)
	suite.Nil(tx)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
