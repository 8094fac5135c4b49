package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

const accountColumns = `account_id, code, description, account_type, normal_balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID, &a.Code, &a.Description, &a.AccountType, &a.NormalBalance, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	return a, err
}

// SaveAccount inserts a new account. A taken code maps to apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.Code, account.Description, account.AccountType, account.NormalBalance,
		account.IsActive, account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "account", account.Code)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	a, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, notFoundOr(err, "account", accountID)
	}
	return &a, nil
}

func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	a, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, notFoundOr(err, "account with code", code)
	}
	return &a, nil
}

// FindMissingAccountIDs returns the ids from accountIDs with no matching row, in input order.
func (r *PgxAccountRepository) FindMissingAccountIDs(ctx context.Context, accountIDs []string) ([]string, error) {
	if len(accountIDs) == 0 {
		return []string{}, nil
	}

	rows, err := r.Pool.Query(ctx, `SELECT account_id FROM accounts WHERE account_id = ANY($1);`, accountIDs)
	if err != nil {
		return nil, queryErr(err, "accounts by id")
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, queryErr(err, "accounts by id")
	}

	present := make(map[string]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	missing := make([]string, 0)
	for _, id := range accountIDs {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, queryErr(err, "accounts")
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, queryErr(err, "accounts")
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "accounts")
	}
	return accounts, nil
}
