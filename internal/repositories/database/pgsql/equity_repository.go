package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

const equityAccountColumns = `equity_account_id, code, name, account_type, display_order, is_active, description,
	created_at, created_by, last_updated_at, last_updated_by`

const equityTransactionColumns = `transaction_id, transaction_number, transaction_date, equity_account_id,
	transaction_type, amount, fiscal_year, fiscal_period, company_name, journal_entry_id,
	is_posted, posted_date, reference_number, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEquityRepository struct {
	BaseRepository
}

func newPgxEquityRepository(pool *pgxpool.Pool) *PgxEquityRepository {
	return &PgxEquityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EquityRepositoryFacade = (*PgxEquityRepository)(nil)

func scanEquityAccount(row pgx.Row) (domain.EquityAccount, error) {
	var a domain.EquityAccount
	err := row.Scan(
		&a.EquityAccountID, &a.Code, &a.Name, &a.AccountType, &a.DisplayOrder, &a.IsActive, &a.Description,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	return a, err
}

func scanEquityTransaction(row pgx.Row) (domain.EquityTransaction, error) {
	var t domain.EquityTransaction
	err := row.Scan(
		&t.TransactionID, &t.TransactionNumber, &t.TransactionDate, &t.EquityAccountID,
		&t.TransactionType, &t.Amount, &t.FiscalYear, &t.FiscalPeriod, &t.CompanyName, &t.JournalEntryID,
		&t.IsPosted, &t.PostedDate, &t.ReferenceNumber, &t.Notes,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	)
	return t, err
}

func (r *PgxEquityRepository) SaveEquityAccount(ctx context.Context, account domain.EquityAccount) error {
	query := `INSERT INTO equity_accounts (` + equityAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		account.EquityAccountID, account.Code, account.Name, account.AccountType, account.DisplayOrder,
		account.IsActive, account.Description,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "equity account", account.Code)
	}
	return nil
}

func (r *PgxEquityRepository) FindEquityAccountByID(ctx context.Context, equityAccountID string) (*domain.EquityAccount, error) {
	a, err := scanEquityAccount(r.Pool.QueryRow(ctx,
		`SELECT `+equityAccountColumns+` FROM equity_accounts WHERE equity_account_id = $1;`, equityAccountID))
	if err != nil {
		return nil, notFoundOr(err, "equity account", equityAccountID)
	}
	return &a, nil
}

func (r *PgxEquityRepository) ListActiveEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+equityAccountColumns+` FROM equity_accounts WHERE is_active ORDER BY display_order, code;`)
	if err != nil {
		return nil, queryErr(err, "equity accounts")
	}
	defer rows.Close()

	accounts := make([]domain.EquityAccount, 0)
	for rows.Next() {
		a, err := scanEquityAccount(rows)
		if err != nil {
			return nil, queryErr(err, "equity accounts")
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "equity accounts")
	}
	return accounts, nil
}

func (r *PgxEquityRepository) SaveEquityTransaction(ctx context.Context, txn domain.EquityTransaction) error {
	query := `INSERT INTO equity_transactions (` + equityTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID, txn.TransactionNumber, txn.TransactionDate, txn.EquityAccountID,
		txn.TransactionType, txn.Amount, txn.FiscalYear, txn.FiscalPeriod, txn.CompanyName, txn.JournalEntryID,
		txn.IsPosted, txn.PostedDate, txn.ReferenceNumber, txn.Notes,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "equity transaction", txn.TransactionNumber)
	}
	return nil
}

func (r *PgxEquityRepository) FindEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error) {
	t, err := scanEquityTransaction(r.Pool.QueryRow(ctx,
		`SELECT `+equityTransactionColumns+` FROM equity_transactions WHERE transaction_id = $1;`, transactionID))
	if err != nil {
		return nil, notFoundOr(err, "equity transaction", transactionID)
	}
	return &t, nil
}

func (r *PgxEquityRepository) ExistsByTransactionNumber(ctx context.Context, transactionNumber string) (bool, error) {
	found, err := exists(ctx, r.Pool,
		`SELECT EXISTS (SELECT 1 FROM equity_transactions WHERE transaction_number = $1);`, transactionNumber)
	if err != nil {
		return false, queryErr(err, "equity transaction number "+transactionNumber)
	}
	return found, nil
}

func (r *PgxEquityRepository) ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+equityTransactionColumns+`
		FROM equity_transactions WHERE fiscal_year = $1 ORDER BY transaction_date, transaction_number;`, fiscalYear)
	if err != nil {
		return nil, queryErr(err, fmt.Sprintf("equity transactions for %d", fiscalYear))
	}
	defer rows.Close()

	txns := make([]domain.EquityTransaction, 0)
	for rows.Next() {
		t, err := scanEquityTransaction(rows)
		if err != nil {
			return nil, queryErr(err, fmt.Sprintf("equity transactions for %d", fiscalYear))
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, fmt.Sprintf("equity transactions for %d", fiscalYear))
	}
	return txns, nil
}

func (r *PgxEquityRepository) ListFiscalYears(ctx context.Context) ([]int, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT fiscal_year FROM equity_transactions ORDER BY fiscal_year DESC;`)
	if err != nil {
		return nil, queryErr(err, "fiscal years")
	}
	years, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, queryErr(err, "fiscal years")
	}
	return years, nil
}

// AggregateEquityAmounts returns one summed row per (account, type, year) for all
// years up to throughYear, so a whole statement needs a single query.
func (r *PgxEquityRepository) AggregateEquityAmounts(ctx context.Context, throughYear int, companyName *string) ([]domain.EquityAmountAggregate, error) {
	query := `
		SELECT equity_account_id, transaction_type, fiscal_year, SUM(amount)
		FROM equity_transactions
		WHERE fiscal_year <= $1
		  AND ($2::text IS NULL OR company_name = $2)
		GROUP BY equity_account_id, transaction_type, fiscal_year
		ORDER BY fiscal_year;
	`
	rows, err := r.Pool.Query(ctx, query, throughYear, companyName)
	if err != nil {
		return nil, queryErr(err, "equity aggregates")
	}
	defer rows.Close()

	aggregates := make([]domain.EquityAmountAggregate, 0)
	for rows.Next() {
		var a domain.EquityAmountAggregate
		if err := rows.Scan(&a.EquityAccountID, &a.TransactionType, &a.FiscalYear, &a.Amount); err != nil {
			return nil, queryErr(err, "equity aggregates")
		}
		aggregates = append(aggregates, a)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "equity aggregates")
	}
	return aggregates, nil
}

func (r *PgxEquityRepository) MarkEquityTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE equity_transactions
		SET is_posted = TRUE, posted_date = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND NOT is_posted;
	`, transactionID, postedAt, userID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to post equity transaction "+transactionID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	posted, err := exists(ctx, r.Pool, `SELECT is_posted FROM equity_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return notFoundOr(err, "equity transaction", transactionID)
	}
	if posted {
		return fmt.Errorf("%w: equity transaction %s", apperrors.ErrAlreadyPosted, transactionID)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "equity transaction "+transactionID+" was not updated", nil)
}
