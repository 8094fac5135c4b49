package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/core/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

type EquityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEquityRepository
	service  portssvc.EquitySvcFacade
	ctx      context.Context
}

func (suite *EquityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEquityRepository)
	suite.service = services.NewEquityService(suite.mockRepo, "Dirham (UAE)", services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func rowByID(rows []domain.EquityStatementRow, id string) domain.EquityStatementRow {
	for _, r := range rows {
		if r.RowID == id {
			return r
		}
	}
	return domain.EquityStatementRow{}
}

func (suite *EquityServiceTestSuite) assertValue(row domain.EquityStatementRow, key, expected string) {
	v, ok := row.Values[key]
	suite.Require().Truef(ok, "row %s has no %s value", row.RowID, key)
	suite.Equalf(expected, v.StringFixed(2), "row %s column %s", row.RowID, key)
}

func (suite *EquityServiceTestSuite) TestGenerateEquityStatement_SingleYear() {
	accounts := []domain.EquityAccount{
		{EquityAccountID: "eq-re", Name: "Retained Earnings", AccountType: "RETAINED_EARNINGS", DisplayOrder: 1},
	}
	suite.mockRepo.On("ListActiveEquityAccounts", suite.ctx).Return(accounts, nil).Once()
	suite.mockRepo.On("AggregateEquityAmounts", suite.ctx, 2023, (*string)(nil)).Return([]domain.EquityAmountAggregate{
		{EquityAccountID: "eq-re", TransactionType: domain.EquityProfitForYear, FiscalYear: 2023, Amount: decimal.NewFromInt(500)},
	}, nil).Once()

	stmt, err := suite.service.GenerateEquityStatement(suite.ctx, 2023, 2023, nil)

	suite.Require().NoError(err)
	suite.Equal("Statement of Changes in Equity", stmt.Title)
	suite.Equal("All Companies", stmt.CompanyName)
	suite.Equal("Dirham (UAE)", stmt.Currency)
	suite.Equal("For the Period Ended 31 December, 2023 and 2023", stmt.Period)

	suite.Require().Len(stmt.Columns, 2)
	suite.Equal("RETAINED_EARNINGS", stmt.Columns[0].AccountType)
	suite.Equal(domain.TotalColumnKey, stmt.Columns[1].AccountType)
	suite.Equal("Total Equity", stmt.Columns[1].ColumnName)
	suite.Equal(999, stmt.Columns[1].DisplayOrder)

	suite.Require().Len(stmt.Rows, 15)
	suite.Equal("opening_2023", stmt.Rows[0].RowID)
	suite.Equal("closing_2023", stmt.Rows[14].RowID)

	opening := rowByID(stmt.Rows, "opening_2023")
	suite.Equal(domain.RowOpening, opening.RowType)
	suite.assertValue(opening, "RETAINED_EARNINGS", "0.00")
	suite.assertValue(opening, domain.TotalColumnKey, "0.00")

	profit := rowByID(stmt.Rows, "profit_year_2023")
	suite.Equal(string(domain.EquityProfitForYear), profit.Category)
	suite.assertValue(profit, "RETAINED_EARNINGS", "500.00")
	suite.assertValue(profit, domain.TotalColumnKey, "500.00")

	comprehensive := rowByID(stmt.Rows, "total_comprehensive_2023")
	suite.True(comprehensive.IsTotal)
	suite.assertValue(comprehensive, domain.TotalColumnKey, "500.00")

	totalOCI := rowByID(stmt.Rows, "total_oci_2023")
	suite.Equal(1, totalOCI.IndentLevel)
	suite.assertValue(totalOCI, "RETAINED_EARNINGS", "0.00")

	ociHeader := rowByID(stmt.Rows, "oci_header_2023")
	suite.True(ociHeader.IsItalic)
	suite.Equal(domain.RowSectionHeader, ociHeader.RowType)

	closing := rowByID(stmt.Rows, "closing_2023")
	suite.assertValue(closing, "RETAINED_EARNINGS", "500.00")
	suite.assertValue(closing, domain.TotalColumnKey, "500.00")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EquityServiceTestSuite) TestGenerateEquityStatement_OpeningCarriesFullHistory() {
	accounts := []domain.EquityAccount{
		{EquityAccountID: "eq-sc", Name: "Share Capital", AccountType: "SHARE_CAPITAL", DisplayOrder: 1},
		{EquityAccountID: "eq-re", Name: "Retained Earnings", AccountType: "RETAINED_EARNINGS", DisplayOrder: 2},
	}
	company := "Acme"
	suite.mockRepo.On("ListActiveEquityAccounts", suite.ctx).Return(accounts, nil).Once()
	suite.mockRepo.On("AggregateEquityAmounts", suite.ctx, 2024, &company).Return([]domain.EquityAmountAggregate{
		{EquityAccountID: "eq-sc", TransactionType: domain.EquityOpeningBalance, FiscalYear: 2020, Amount: decimal.NewFromInt(1000)},
		{EquityAccountID: "eq-sc", TransactionType: domain.EquityIssueOrdinaryShares, FiscalYear: 2023, Amount: decimal.NewFromInt(250)},
		{EquityAccountID: "eq-re", TransactionType: domain.EquityProfitForYear, FiscalYear: 2023, Amount: decimal.NewFromInt(400)},
		{EquityAccountID: "eq-re", TransactionType: domain.EquityDividends, FiscalYear: 2024, Amount: decimal.NewFromInt(-150)},
		{EquityAccountID: "eq-re", TransactionType: domain.EquityOCIFairValue, FiscalYear: 2024, Amount: decimal.NewFromInt(30)},
	}, nil).Once()

	stmt, err := suite.service.GenerateEquityStatement(suite.ctx, 2023, 2024, &company)

	suite.Require().NoError(err)
	suite.Equal("Acme", stmt.CompanyName)
	suite.Len(stmt.Rows, 30)

	opening23 := rowByID(stmt.Rows, "opening_2023")
	suite.assertValue(opening23, "SHARE_CAPITAL", "1000.00")
	suite.assertValue(opening23, "RETAINED_EARNINGS", "0.00")
	suite.assertValue(opening23, domain.TotalColumnKey, "1000.00")

	closing23 := rowByID(stmt.Rows, "closing_2023")
	suite.assertValue(closing23, "SHARE_CAPITAL", "1250.00")
	suite.assertValue(closing23, "RETAINED_EARNINGS", "400.00")

	opening24 := rowByID(stmt.Rows, "opening_2024")
	for key, v := range closing23.Values {
		suite.assertValue(opening24, key, v.StringFixed(2))
	}

	suite.assertValue(rowByID(stmt.Rows, "dividends_2024"), "RETAINED_EARNINGS", "-150.00")
	suite.assertValue(rowByID(stmt.Rows, "total_oci_2024"), domain.TotalColumnKey, "30.00")
	suite.assertValue(rowByID(stmt.Rows, "total_comprehensive_2024"), "RETAINED_EARNINGS", "30.00")
	suite.assertValue(rowByID(stmt.Rows, "issue_shares_2024"), "SHARE_CAPITAL", "0.00")

	closing24 := rowByID(stmt.Rows, "closing_2024")
	suite.assertValue(closing24, "RETAINED_EARNINGS", "280.00")
	suite.assertValue(closing24, domain.TotalColumnKey, "1530.00")
}

func (suite *EquityServiceTestSuite) TestGenerateEquityStatement_InvertedRange() {
	_, err := suite.service.GenerateEquityStatement(suite.ctx, 2024, 2023, nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AggregateEquityAmounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EquityServiceTestSuite) TestCreateEquityTransaction_UnknownType() {
	req := dto.CreateEquityTransactionRequest{
		TransactionNumber: "EQ-1",
		TransactionDate:   fixedNow,
		EquityAccountID:   "eq-re",
		TransactionType:   "BONUS",
		Amount:            decimal.NewFromInt(10),
		FiscalYear:        2024,
	}

	_, err := suite.service.CreateEquityTransaction(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EquityServiceTestSuite) TestCreateEquityTransaction_Success() {
	req := dto.CreateEquityTransactionRequest{
		TransactionNumber: "EQ-1",
		TransactionDate:   fixedNow,
		EquityAccountID:   "eq-re",
		TransactionType:   domain.EquityDividends,
		Amount:            decimal.RequireFromString("-120.123456"),
		FiscalYear:        2024,
	}
	suite.mockRepo.On("FindEquityAccountByID", suite.ctx, "eq-re").Return(&domain.EquityAccount{EquityAccountID: "eq-re"}, nil).Once()
	suite.mockRepo.On("ExistsByTransactionNumber", suite.ctx, "EQ-1").Return(false, nil).Once()
	suite.mockRepo.On("SaveEquityTransaction", suite.ctx, mock.AnythingOfType("domain.EquityTransaction")).Return(nil).Once()

	txn, err := suite.service.CreateEquityTransaction(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("-120.1235", txn.Amount.String())
	suite.False(txn.IsPosted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EquityServiceTestSuite) TestPostEquityTransaction_Twice() {
	draft := &domain.EquityTransaction{TransactionID: "tx-1", TransactionNumber: "EQ-1"}
	posted := &domain.EquityTransaction{TransactionID: "tx-1", TransactionNumber: "EQ-1", IsPosted: true}
	suite.mockRepo.On("FindEquityTransactionByID", suite.ctx, "tx-1").Return(draft, nil).Once()
	suite.mockRepo.On("MarkEquityTransactionPosted", suite.ctx, "tx-1", "poster", fixedNow).Return(nil).Once()
	suite.mockRepo.On("FindEquityTransactionByID", suite.ctx, "tx-1").Return(posted, nil).Once()

	txn, err := suite.service.PostEquityTransaction(suite.ctx, "tx-1", "poster")
	suite.Require().NoError(err)
	suite.True(txn.IsPosted)
	suite.Equal(fixedNow, *txn.PostedDate)

	_, err = suite.service.PostEquityTransaction(suite.ctx, "tx-1", "poster")
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEquityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquityServiceTestSuite))
}
