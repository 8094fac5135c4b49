package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// CashFlowItemRepository manages configured statement lines.
type CashFlowItemRepository interface {
	SaveCashFlowItem(ctx context.Context, item domain.CashFlowItem) error
	FindCashFlowItemByID(ctx context.Context, itemID string) (*domain.CashFlowItem, error)
	ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error)
}

// CashFlowTransactionReader defines read operations for cash-flow transactions.
type CashFlowTransactionReader interface {
	FindCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error)
	ExistsByCashFlowNumber(ctx context.Context, transactionNumber string) (bool, error)
	// ListCashFlowTransactions applies the filter and populates Item on each result.
	ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error)
	ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error)
}

// CashFlowTransactionWriter defines write operations for cash-flow transactions.
type CashFlowTransactionWriter interface {
	SaveCashFlowTransaction(ctx context.Context, txn domain.CashFlowTransaction) error
	MarkCashFlowTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error
}

// CashFlowRepositoryFacade combines everything the cash-flow service needs.
type CashFlowRepositoryFacade interface {
	CashFlowItemRepository
	CashFlowTransactionReader
	CashFlowTransactionWriter
}
