package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every pgx-backed repository on a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		ItemRepo:         newPgxItemRepository(dbPool),
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		EquityRepo:       newPgxEquityRepository(dbPool),
		CashFlowRepo:     newPgxCashFlowRepository(dbPool),
	}
}
