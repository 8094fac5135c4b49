package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEquityAccountRequest defines the payload for adding a statement column.
type CreateEquityAccountRequest struct {
	Code         string  `json:"code" binding:"required,max=20"`
	Name         string  `json:"name" binding:"required,max=255"`
	AccountType  string  `json:"accountType" binding:"required,max=50"`
	DisplayOrder int     `json:"displayOrder" binding:"min=0"`
	Description  *string `json:"description,omitempty"`
}

// CreateEquityTransactionRequest defines the payload for recording an equity movement.
type CreateEquityTransactionRequest struct {
	TransactionNumber string                       `json:"transactionNumber" binding:"required,max=50"`
	TransactionDate   time.Time                    `json:"transactionDate" binding:"required"`
	EquityAccountID   string                       `json:"equityAccountID" binding:"required"`
	TransactionType   domain.EquityTransactionType `json:"transactionType" binding:"required"`
	Amount            decimal.Decimal              `json:"amount"`
	FiscalYear        int                          `json:"fiscalYear" binding:"required,min=1900,max=9999"`
	FiscalPeriod      *int                         `json:"fiscalPeriod,omitempty" binding:"omitempty,min=1,max=12"`
	CompanyName       *string                      `json:"companyName,omitempty"`
	ReferenceNumber   *string                      `json:"referenceNumber,omitempty"`
	Notes             *string                      `json:"notes,omitempty"`
}

// EquityStatementParams holds the query parameters of the equity statement.
type EquityStatementParams struct {
	StartYear int     `form:"startYear" binding:"required,min=1900,max=9999"`
	EndYear   int     `form:"endYear" binding:"required,min=1900,max=9999"`
	Company   *string `form:"company"`
}

// CreateCashFlowItemRequest defines the payload for adding a cash-flow statement line.
type CreateCashFlowItemRequest struct {
	Code         string                  `json:"code" binding:"required,max=20"`
	Description  string                  `json:"description" binding:"required,max=255"`
	FlowType     domain.FlowType         `json:"flowType" binding:"required,oneof=INFLOW OUTFLOW"`
	Category     domain.CashFlowCategory `json:"category" binding:"required,oneof=OPERATING INVESTING FINANCING"`
	DisplayOrder *int                    `json:"displayOrder,omitempty"`
}

// CreateCashFlowTransactionRequest defines the payload for recording a cash movement.
// Flow type and category default to the item's when omitted.
type CreateCashFlowTransactionRequest struct {
	TransactionNumber string                   `json:"transactionNumber" binding:"required,max=50"`
	TransactionDate   time.Time                `json:"transactionDate" binding:"required"`
	CashFlowItemID    string                   `json:"cashFlowItemID" binding:"required"`
	FlowType          *domain.FlowType         `json:"flowType,omitempty" binding:"omitempty,oneof=INFLOW OUTFLOW"`
	Category          *domain.CashFlowCategory `json:"category,omitempty" binding:"omitempty,oneof=OPERATING INVESTING FINANCING"`
	Amount            decimal.Decimal          `json:"amount"`
	Entity            *string                  `json:"entity,omitempty"`
	Currency          *string                  `json:"currency,omitempty" binding:"omitempty,len=3,uppercase"`
	ReferenceNumber   *string                  `json:"referenceNumber,omitempty"`
	Notes             *string                  `json:"notes,omitempty"`
}

// DateLayout is the wire format of date-only query parameters.
const DateLayout = "2006-01-02"

// EquityTransactionsParams holds the query parameters of the equity transaction list.
type EquityTransactionsParams struct {
	FiscalYear int `form:"fiscalYear" binding:"required,min=1900,max=9999"`
}

// CashFlowQueryParams holds the optional date range and entity of cash-flow reads.
// Dates use DateLayout.
type CashFlowQueryParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Entity    string `form:"entity"`
}

// ToFilter parses the dates. Blank values stay nil.
func (p CashFlowQueryParams) ToFilter() (domain.CashFlowFilter, error) {
	var filter domain.CashFlowFilter
	var err error
	if filter.StartDate, err = parseDate("startDate", p.StartDate); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDate("endDate", p.EndDate); err != nil {
		return filter, err
	}
	if entity := strings.TrimSpace(p.Entity); entity != "" {
		filter.Entity = &entity
	}
	return filter, nil
}

func parseDate(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError("%s must be formatted as %s", name, DateLayout)
	}
	return &t, nil
}
