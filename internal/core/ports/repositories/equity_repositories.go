package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// EquityAccountRepository manages statement columns.
type EquityAccountRepository interface {
	SaveEquityAccount(ctx context.Context, account domain.EquityAccount) error
	FindEquityAccountByID(ctx context.Context, equityAccountID string) (*domain.EquityAccount, error)
	// ListActiveEquityAccounts returns active accounts ordered by display order.
	ListActiveEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error)
}

// EquityTransactionReader defines read operations for equity transactions.
type EquityTransactionReader interface {
	FindEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error)
	ExistsByTransactionNumber(ctx context.Context, transactionNumber string) (bool, error)
	ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error)
	// ListFiscalYears returns distinct fiscal years, newest first.
	ListFiscalYears(ctx context.Context) ([]int, error)

	// AggregateEquityAmounts sums amounts grouped by account, type and fiscal year for
	// every year up to and including throughYear. A nil company includes all companies.
	AggregateEquityAmounts(ctx context.Context, throughYear int, companyName *string) ([]domain.EquityAmountAggregate, error)
}

// EquityTransactionWriter defines write operations for equity transactions.
type EquityTransactionWriter interface {
	SaveEquityTransaction(ctx context.Context, txn domain.EquityTransaction) error
	// MarkEquityTransactionPosted flips the posted flag. It returns apperrors.ErrAlreadyPosted
	// if the row was posted already.
	MarkEquityTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error
}

// EquityRepositoryFacade combines everything the equity service needs.
type EquityRepositoryFacade interface {
	EquityAccountRepository
	EquityTransactionReader
	EquityTransactionWriter
}
