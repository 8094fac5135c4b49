package services

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

// EquityTransactionSvc records and posts equity movements.
type EquityTransactionSvc interface {
	CreateEquityAccount(ctx context.Context, req dto.CreateEquityAccountRequest, userID string) (*domain.EquityAccount, error)
	ListEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error)
	CreateEquityTransaction(ctx context.Context, req dto.CreateEquityTransactionRequest, userID string) (*domain.EquityTransaction, error)
	PostEquityTransaction(ctx context.Context, transactionID string, actor string) (*domain.EquityTransaction, error)
	GetEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error)
	ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error)
	ListFiscalYears(ctx context.Context) ([]int, error)
}

// EquityStatementSvc renders the statement of changes in equity.
type EquityStatementSvc interface {
	GenerateEquityStatement(ctx context.Context, startYear, endYear int, companyName *string) (*domain.EquityStatement, error)
}

// EquitySvcFacade combines equity operations.
type EquitySvcFacade interface {
	EquityTransactionSvc
	EquityStatementSvc
}

// CashFlowTransactionSvc records and posts cash movements.
type CashFlowTransactionSvc interface {
	CreateCashFlowItem(ctx context.Context, req dto.CreateCashFlowItemRequest, userID string) (*domain.CashFlowItem, error)
	ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error)
	CreateCashFlowTransaction(ctx context.Context, req dto.CreateCashFlowTransactionRequest, userID string) (*domain.CashFlowTransaction, error)
	PostCashFlowTransaction(ctx context.Context, transactionID string, actor string) (*domain.CashFlowTransaction, error)
	GetCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error)
	ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error)
	ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error)
}

// CashFlowStatementSvc renders the cash-flow statement.
type CashFlowStatementSvc interface {
	GenerateCashFlowStatement(ctx context.Context, startDate, endDate *time.Time, entity *string) (*domain.CashFlowStatement, error)
}

// CashFlowSvcFacade combines cash-flow operations.
type CashFlowSvcFacade interface {
	CashFlowTransactionSvc
	CashFlowStatementSvc
}
