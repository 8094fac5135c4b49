package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager exposes explicit transaction control for repositories
// whose callers need to compose several writes.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	ItemRepo         ItemRepositoryFacade
	JournalEntryRepo JournalEntryRepositoryWithTx
	InvoiceRepo      InvoiceRepositoryFacade
	EquityRepo       EquityRepositoryFacade
	CashFlowRepo     CashFlowRepositoryFacade
}
