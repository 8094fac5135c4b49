package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/core/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

func intPtr(i int) *int { return &i }

type CashFlowServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashFlowRepository
	service  portssvc.CashFlowSvcFacade
	ctx      context.Context
}

func (suite *CashFlowServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashFlowRepository)
	suite.service = services.NewCashFlowService(suite.mockRepo, "USD", "Dirham (UAE)", services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func cashTxn(itemID, code string, order *int, flow domain.FlowType, amount int64) domain.CashFlowTransaction {
	return domain.CashFlowTransaction{
		TransactionID:  itemID + "-" + decimal.NewFromInt(amount).String(),
		CashFlowItemID: itemID,
		FlowType:       flow,
		Category:       domain.Operating,
		Amount:         decimal.NewFromInt(amount),
		Item: &domain.CashFlowItem{
			CashFlowItemID: itemID,
			Code:           code,
			Description:    code + " description",
			FlowType:       flow,
			DisplayOrder:   order,
		},
	}
}

func (suite *CashFlowServiceTestSuite) TestGenerateCashFlowStatement_GroupsSortsAndTotals() {
	txns := []domain.CashFlowTransaction{
		cashTxn("i-sales", "SALES", intPtr(2), domain.Inflow, 300),
		cashTxn("i-misc", "MISC", nil, domain.Inflow, 50),
		cashTxn("i-loans", "LOANS", intPtr(1), domain.Inflow, 100),
		cashTxn("i-sales", "SALES", intPtr(2), domain.Inflow, 200),
		cashTxn("i-rent", "RENT", intPtr(5), domain.Outflow, 120),
		cashTxn("i-wages", "WAGES", intPtr(3), domain.Outflow, 400),
	}
	suite.mockRepo.On("ListCashFlowTransactions", suite.ctx, domain.CashFlowFilter{}).Return(txns, nil).Once()

	stmt, err := suite.service.GenerateCashFlowStatement(suite.ctx, nil, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("CASH FLOW STATEMENT", stmt.Title)
	suite.Equal("All entities", stmt.Entity)
	suite.Equal("Dirham (UAE)", stmt.Currency)
	suite.Equal("Data for all time", stmt.Period)

	suite.Require().Len(stmt.InflowItems, 3)
	suite.Equal("LOANS", stmt.InflowItems[0].ItemCode)
	suite.Equal("SALES", stmt.InflowItems[1].ItemCode)
	suite.Equal("500.00", stmt.InflowItems[1].Amount.StringFixed(2))
	suite.Equal("MISC", stmt.InflowItems[2].ItemCode)

	suite.Require().Len(stmt.OutflowItems, 2)
	suite.Equal("WAGES", stmt.OutflowItems[0].ItemCode)
	suite.Equal("RENT", stmt.OutflowItems[1].ItemCode)

	suite.Equal("650.00", stmt.TotalInflow.StringFixed(2))
	suite.Equal("520.00", stmt.TotalOutflow.StringFixed(2))
	suite.Equal("130.00", stmt.NetFlow.StringFixed(2))
	suite.True(stmt.OpeningBalance.IsZero())
	suite.Equal("130.00", stmt.ClosingBalance.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestGenerateCashFlowStatement_SplitsItemByFlowType() {
	refund := cashTxn("i-deposit", "DEPOSIT", intPtr(1), domain.Inflow, 40)
	refund.TransactionID = "i-deposit-refund"
	refund.FlowType = domain.Outflow
	txns := []domain.CashFlowTransaction{
		cashTxn("i-deposit", "DEPOSIT", intPtr(1), domain.Inflow, 100),
		refund,
	}
	suite.mockRepo.On("ListCashFlowTransactions", suite.ctx, domain.CashFlowFilter{}).Return(txns, nil).Once()

	stmt, err := suite.service.GenerateCashFlowStatement(suite.ctx, nil, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(stmt.InflowItems, 1)
	suite.Equal("DEPOSIT", stmt.InflowItems[0].ItemCode)
	suite.Equal("100.00", stmt.InflowItems[0].Amount.StringFixed(2))
	suite.Require().Len(stmt.OutflowItems, 1)
	suite.Equal("DEPOSIT", stmt.OutflowItems[0].ItemCode)
	suite.Equal(domain.Outflow, stmt.OutflowItems[0].FlowType)
	suite.Equal("40.00", stmt.OutflowItems[0].Amount.StringFixed(2))

	suite.Equal("100.00", stmt.TotalInflow.StringFixed(2))
	suite.Equal("40.00", stmt.TotalOutflow.StringFixed(2))
	suite.Equal("60.00", stmt.NetFlow.StringFixed(2))
}

func (suite *CashFlowServiceTestSuite) TestGenerateCashFlowStatement_DateRangeAndEntity() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	entity := " Branch A "
	trimmed := "Branch A"
	suite.mockRepo.On("ListCashFlowTransactions", suite.ctx,
		domain.CashFlowFilter{StartDate: &start, EndDate: &end, Entity: &trimmed}).
		Return([]domain.CashFlowTransaction{}, nil).Once()

	stmt, err := suite.service.GenerateCashFlowStatement(suite.ctx, &start, &end, &entity)

	suite.Require().NoError(err)
	suite.Equal("Branch A", stmt.Entity)
	suite.Equal("Data from 2024-01-01 to 2024-12-31", stmt.Period)
	suite.Empty(stmt.InflowItems)
	suite.True(stmt.ClosingBalance.IsZero())
}

func (suite *CashFlowServiceTestSuite) TestGenerateCashFlowStatement_SingleBoundIsAllTime() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListCashFlowTransactions", suite.ctx, domain.CashFlowFilter{StartDate: &start}).
		Return([]domain.CashFlowTransaction{}, nil).Once()

	stmt, err := suite.service.GenerateCashFlowStatement(suite.ctx, &start, nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Data for all time", stmt.Period)
}

func (suite *CashFlowServiceTestSuite) TestCreateCashFlowTransaction_DefaultsFromItem() {
	item := &domain.CashFlowItem{CashFlowItemID: "i-sales", FlowType: domain.Inflow, Category: domain.Operating}
	suite.mockRepo.On("FindCashFlowItemByID", suite.ctx, "i-sales").Return(item, nil).Once()
	suite.mockRepo.On("ExistsByCashFlowNumber", suite.ctx, "CF-1").Return(false, nil).Once()
	suite.mockRepo.On("SaveCashFlowTransaction", suite.ctx, mock.AnythingOfType("domain.CashFlowTransaction")).Return(nil).Once()

	txn, err := suite.service.CreateCashFlowTransaction(suite.ctx, dto.CreateCashFlowTransactionRequest{
		TransactionNumber: "CF-1",
		TransactionDate:   fixedNow,
		CashFlowItemID:    "i-sales",
		Amount:            decimal.RequireFromString("99.999"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Inflow, txn.FlowType)
	suite.Equal(domain.Operating, txn.Category)
	suite.Equal("USD", txn.Currency)
	suite.Equal("100.00", txn.Amount.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashFlowServiceTestSuite) TestCreateCashFlowTransaction_NonPositiveAmount() {
	_, err := suite.service.CreateCashFlowTransaction(suite.ctx, dto.CreateCashFlowTransactionRequest{
		TransactionNumber: "CF-1",
		CashFlowItemID:    "i-sales",
		Amount:            decimal.Zero,
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCashFlowItemByID", mock.Anything, mock.Anything)
}

func (suite *CashFlowServiceTestSuite) TestCreateCashFlowTransaction_UnknownItem() {
	suite.mockRepo.On("FindCashFlowItemByID", suite.ctx, "missing").
		Return(nil, apperrors.NewNotFoundError("cash flow item", "missing")).Once()

	_, err := suite.service.CreateCashFlowTransaction(suite.ctx, dto.CreateCashFlowTransactionRequest{
		TransactionNumber: "CF-1",
		CashFlowItemID:    "missing",
		Amount:            decimal.NewFromInt(5),
	}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashFlowServiceTestSuite) TestPostCashFlowTransaction_AlreadyPosted() {
	suite.mockRepo.On("FindCashFlowTransactionByID", suite.ctx, "tx-1").
		Return(&domain.CashFlowTransaction{TransactionID: "tx-1", IsPosted: true}, nil).Once()

	_, err := suite.service.PostCashFlowTransaction(suite.ctx, "tx-1", "poster")

	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkCashFlowTransactionPosted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashFlowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashFlowServiceTestSuite))
}
