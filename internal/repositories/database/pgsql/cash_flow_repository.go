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

const cashFlowItemColumns = `cash_flow_item_id, code, description, flow_type, category, display_order, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const cashFlowTransactionColumns = `transaction_id, transaction_number, transaction_date, cash_flow_item_id,
	flow_type, category, amount, entity, currency, journal_entry_id,
	is_posted, posted_date, reference_number, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCashFlowRepository struct {
	BaseRepository
}

func newPgxCashFlowRepository(pool *pgxpool.Pool) *PgxCashFlowRepository {
	return &PgxCashFlowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashFlowRepositoryFacade = (*PgxCashFlowRepository)(nil)

func cashFlowItemTargets(it *domain.CashFlowItem) []any {
	return []any{
		&it.CashFlowItemID, &it.Code, &it.Description, &it.FlowType, &it.Category, &it.DisplayOrder, &it.IsActive,
		&it.CreatedAt, &it.CreatedBy, &it.LastUpdatedAt, &it.LastUpdatedBy,
	}
}

func cashFlowTransactionTargets(t *domain.CashFlowTransaction) []any {
	return []any{
		&t.TransactionID, &t.TransactionNumber, &t.TransactionDate, &t.CashFlowItemID,
		&t.FlowType, &t.Category, &t.Amount, &t.Entity, &t.Currency, &t.JournalEntryID,
		&t.IsPosted, &t.PostedDate, &t.ReferenceNumber, &t.Notes,
		&t.CreatedAt, &t.CreatedBy, &t.LastUpdatedAt, &t.LastUpdatedBy,
	}
}

func collectCashFlowTransactions(rows pgx.Rows, withItem bool) ([]domain.CashFlowTransaction, error) {
	defer rows.Close()

	txns := make([]domain.CashFlowTransaction, 0)
	for rows.Next() {
		var t domain.CashFlowTransaction
		targets := cashFlowTransactionTargets(&t)
		var item domain.CashFlowItem
		if withItem {
			targets = append(targets, cashFlowItemTargets(&item)...)
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		if withItem {
			t.Item = &item
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *PgxCashFlowRepository) SaveCashFlowItem(ctx context.Context, item domain.CashFlowItem) error {
	query := `INSERT INTO cash_flow_items (` + cashFlowItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		item.CashFlowItemID, item.Code, item.Description, item.FlowType, item.Category, item.DisplayOrder, item.IsActive,
		item.CreatedAt, item.CreatedBy, item.LastUpdatedAt, item.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "cash flow item", item.Code)
	}
	return nil
}

func (r *PgxCashFlowRepository) FindCashFlowItemByID(ctx context.Context, itemID string) (*domain.CashFlowItem, error) {
	var it domain.CashFlowItem
	err := r.Pool.QueryRow(ctx, `SELECT `+cashFlowItemColumns+` FROM cash_flow_items WHERE cash_flow_item_id = $1;`, itemID).
		Scan(cashFlowItemTargets(&it)...)
	if err != nil {
		return nil, notFoundOr(err, "cash flow item", itemID)
	}
	return &it, nil
}

func (r *PgxCashFlowRepository) ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+cashFlowItemColumns+`
		FROM cash_flow_items ORDER BY display_order NULLS LAST, code;`)
	if err != nil {
		return nil, queryErr(err, "cash flow items")
	}
	defer rows.Close()

	items := make([]domain.CashFlowItem, 0)
	for rows.Next() {
		var it domain.CashFlowItem
		if err := rows.Scan(cashFlowItemTargets(&it)...); err != nil {
			return nil, queryErr(err, "cash flow items")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "cash flow items")
	}
	return items, nil
}

func (r *PgxCashFlowRepository) SaveCashFlowTransaction(ctx context.Context, txn domain.CashFlowTransaction) error {
	query := `INSERT INTO cash_flow_transactions (` + cashFlowTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID, txn.TransactionNumber, txn.TransactionDate, txn.CashFlowItemID,
		txn.FlowType, txn.Category, txn.Amount, txn.Entity, txn.Currency, txn.JournalEntryID,
		txn.IsPosted, txn.PostedDate, txn.ReferenceNumber, txn.Notes,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "cash flow transaction", txn.TransactionNumber)
	}
	return nil
}

func (r *PgxCashFlowRepository) FindCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error) {
	var t domain.CashFlowTransaction
	err := r.Pool.QueryRow(ctx, `SELECT `+cashFlowTransactionColumns+` FROM cash_flow_transactions WHERE transaction_id = $1;`, transactionID).
		Scan(cashFlowTransactionTargets(&t)...)
	if err != nil {
		return nil, notFoundOr(err, "cash flow transaction", transactionID)
	}
	return &t, nil
}

func (r *PgxCashFlowRepository) ExistsByCashFlowNumber(ctx context.Context, transactionNumber string) (bool, error) {
	found, err := exists(ctx, r.Pool,
		`SELECT EXISTS (SELECT 1 FROM cash_flow_transactions WHERE transaction_number = $1);`, transactionNumber)
	if err != nil {
		return false, queryErr(err, "cash flow transaction number "+transactionNumber)
	}
	return found, nil
}

// ListCashFlowTransactions joins each transaction to its item. The date range only
// applies when both bounds are present.
func (r *PgxCashFlowRepository) ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error) {
	var start, end *time.Time
	if filter.HasDateRange() {
		start, end = filter.StartDate, filter.EndDate
	}

	query := `
		SELECT ` + prefixColumns("t", cashFlowTransactionColumns) + `, ` + prefixColumns("i", cashFlowItemColumns) + `
		FROM cash_flow_transactions t
		JOIN cash_flow_items i ON i.cash_flow_item_id = t.cash_flow_item_id
		WHERE ($1::date IS NULL OR t.transaction_date >= $1)
		  AND ($2::date IS NULL OR t.transaction_date <= $2)
		  AND ($3::text IS NULL OR t.entity = $3)
		ORDER BY t.transaction_date, t.transaction_number;
	`
	rows, err := r.Pool.Query(ctx, query, start, end, filter.Entity)
	if err != nil {
		return nil, queryErr(err, "cash flow transactions")
	}
	txns, err := collectCashFlowTransactions(rows, true)
	if err != nil {
		return nil, queryErr(err, "cash flow transactions")
	}
	return txns, nil
}

func (r *PgxCashFlowRepository) ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+cashFlowTransactionColumns+`
		FROM cash_flow_transactions WHERE NOT is_posted ORDER BY transaction_date, transaction_number;`)
	if err != nil {
		return nil, queryErr(err, "unposted cash flow transactions")
	}
	txns, err := collectCashFlowTransactions(rows, false)
	if err != nil {
		return nil, queryErr(err, "unposted cash flow transactions")
	}
	return txns, nil
}

func (r *PgxCashFlowRepository) MarkCashFlowTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE cash_flow_transactions
		SET is_posted = TRUE, posted_date = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1 AND NOT is_posted;
	`, transactionID, postedAt, userID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to post cash flow transaction "+transactionID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	posted, err := exists(ctx, r.Pool, `SELECT is_posted FROM cash_flow_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return notFoundOr(err, "cash flow transaction", transactionID)
	}
	if posted {
		return fmt.Errorf("%w: cash flow transaction %s", apperrors.ErrAlreadyPosted, transactionID)
	}
	return apperrors.NewAppError(http.StatusInternalServerError, "cash flow transaction "+transactionID+" was not updated", nil)
}
