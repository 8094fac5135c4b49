package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/SscSPs/accounts_backoffice/internal/handlers"
)

type StatementHandlerTestSuite struct {
	handlerSuite
	mockEquity   *MockEquityService
	mockCashFlow *MockCashFlowService
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	suite.setupRouter()
	suite.mockEquity = new(MockEquityService)
	suite.mockCashFlow = new(MockCashFlowService)
	handlers.RegisterEquityRoutes(suite.v1, suite.mockEquity, 5*time.Second)
	handlers.RegisterCashFlowRoutes(suite.v1, suite.mockCashFlow, 5*time.Second)
}

func (suite *StatementHandlerTestSuite) TestEquityStatement_Range() {
	statement := &domain.EquityStatement{
		Title:       "Statement of Changes in Equity",
		CompanyName: "Acme",
		StartYear:   2023,
		EndYear:     2024,
		Columns:     []domain.EquityStatementColumn{{AccountType: domain.TotalColumnKey, ColumnName: "Total Equity", DisplayOrder: 999}},
		Rows: []domain.EquityStatementRow{{
			RowID:   "OPENING_2023",
			RowType: domain.RowOpening,
			Values:  map[string]decimal.Decimal{domain.TotalColumnKey: decimal.Zero},
		}},
	}
	suite.mockEquity.On("GenerateEquityStatement", mock.Anything, 2023, 2024,
		mock.MatchedBy(func(c *string) bool { return c != nil && *c == "Acme" }),
	).Return(statement, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/equity/statement?startYear=2023&endYear=2024&company=Acme", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.EquityStatement
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Statement of Changes in Equity", resp.Title)
	suite.Len(resp.Rows, 1)
	suite.mockEquity.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestEquityStatement_MissingYears() {
	w := suite.perform(http.MethodGet, "/api/v1/equity/statement?startYear=2023", nil, uuid.NewString())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Details, "EndYear")
}

func (suite *StatementHandlerTestSuite) TestEquityStatement_InvertedRange() {
	suite.mockEquity.On("GenerateEquityStatement", mock.Anything, 2025, 2024, (*string)(nil)).
		Return(nil, apperrors.NewValidationError("start year %d is after end year %d", 2025, 2024)).Once()

	w := suite.perform(http.MethodGet, "/api/v1/equity/statement?startYear=2025&endYear=2024", nil, uuid.NewString())

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *StatementHandlerTestSuite) TestEquityStatement_SingleYear() {
	suite.mockEquity.On("GenerateEquityStatement", mock.Anything, 2024, 2024, (*string)(nil)).
		Return(&domain.EquityStatement{StartYear: 2024, EndYear: 2024}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/equity/statement/year/2024", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockEquity.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestEquityStatement_SingleYearNotANumber() {
	w := suite.perform(http.MethodGet, "/api/v1/equity/statement/year/twenty", nil, uuid.NewString())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEquity.AssertNotCalled(suite.T(), "GenerateEquityStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestEquityTransactions_ByYear() {
	suite.mockEquity.On("ListEquityTransactionsByYear", mock.Anything, 2024).
		Return([]domain.EquityTransaction{{TransactionID: "t1", FiscalYear: 2024}}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/equity/transactions?fiscalYear=2024", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockEquity.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestPostEquityTransaction_Twice() {
	userID := uuid.NewString()
	suite.mockEquity.On("PostEquityTransaction", mock.Anything, "t1", userID).
		Return(nil, apperrors.ErrAlreadyPosted).Once()

	w := suite.perform(http.MethodPost, "/api/v1/equity/transactions/t1/post", nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *StatementHandlerTestSuite) TestCashFlowStatement_DateRange() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	statement := &domain.CashFlowStatement{
		Title:          "Statement of Cash Flows",
		Entity:         "HQ",
		Period:         "Data from 2024-01-01 to 2024-12-31",
		OpeningBalance: decimal.Zero,
		InflowItems:    []domain.CashFlowLineItem{{ItemCode: "CF-IN", FlowType: domain.Inflow, Amount: decimal.NewFromInt(500)}},
		OutflowItems:   []domain.CashFlowLineItem{},
	}
	statement.CalculateTotals()

	suite.mockCashFlow.On("GenerateCashFlowStatement", mock.Anything,
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(start) }),
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(end) }),
		mock.MatchedBy(func(e *string) bool { return e != nil && *e == "HQ" }),
	).Return(statement, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/cash-flow/statement?startDate=2024-01-01&endDate=2024-12-31&entity=HQ", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp domain.CashFlowStatement
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ClosingBalance.Equal(decimal.NewFromInt(500)))
	suite.mockCashFlow.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestCashFlowStatement_BadDate() {
	w := suite.perform(http.MethodGet, "/api/v1/cash-flow/statement?startDate=01/01/2024", nil, uuid.NewString())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Message, "startDate")
	suite.mockCashFlow.AssertNotCalled(suite.T(), "GenerateCashFlowStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestCashFlowTransactions_UnpostedRoute() {
	suite.mockCashFlow.On("ListUnpostedCashFlowTransactions", mock.Anything).
		Return([]domain.CashFlowTransaction{}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/cash-flow/transactions/unposted", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockCashFlow.AssertExpectations(suite.T())
	suite.mockCashFlow.AssertNotCalled(suite.T(), "GetCashFlowTransactionByID", mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestCashFlowTransactions_NoFilter() {
	suite.mockCashFlow.On("ListCashFlowTransactions", mock.Anything, domain.CashFlowFilter{}).
		Return([]domain.CashFlowTransaction{}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/cash-flow/transactions", nil, uuid.NewString())

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockCashFlow.AssertExpectations(suite.T())
}

func TestStatementHandlers(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
