package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
)

const invoiceColumns = `invoice_id, invoice_number, invoice_date, due_date, document_type, company_id,
	contract, entity, warehouse, notes,
	subtotal_amount, vat_amount, discount_amount, total_amount, paid_amount,
	status, is_posted, posted_date, posted_by, journal_entry_id,
	created_at, created_by, last_updated_at, last_updated_by`

const invoiceLineColumns = `line_id, invoice_id, line_number, item_id, description,
	quantity, unit_price, vat_rate, discount_rate,
	line_amount, discount_amount, vat_amount, net_amount`

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate, &inv.DocumentType, &inv.CompanyID,
		&inv.Contract, &inv.Entity, &inv.Warehouse, &inv.Notes,
		&inv.SubtotalAmount, &inv.VATAmount, &inv.DiscountAmount, &inv.TotalAmount, &inv.PaidAmount,
		&inv.Status, &inv.IsPosted, &inv.PostedDate, &inv.PostedBy, &inv.JournalEntryID,
		&inv.CreatedAt, &inv.CreatedBy, &inv.LastUpdatedAt, &inv.LastUpdatedBy,
	)
	return inv, err
}

func insertInvoiceLines(ctx context.Context, q querier, invoice domain.Invoice) error {
	query := `INSERT INTO invoice_lines (` + invoiceLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	batch := &pgx.Batch{}
	for _, l := range invoice.Lines {
		batch.Queue(query,
			l.LineID, invoice.InvoiceID, l.LineNumber, l.ItemID, l.Description,
			l.Quantity, l.UnitPrice, l.VATRate, l.DiscountRate,
			l.LineAmount, l.DiscountAmount, l.VATAmount, l.NetAmount,
		)
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert lines for invoice "+invoice.InvoiceNumber, err)
	}
	return nil
}

// SaveInvoice inserts header and lines atomically.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO invoices (` + invoiceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);`
		_, err := tx.Exec(ctx, query,
			invoice.InvoiceID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate, invoice.DocumentType, invoice.CompanyID,
			invoice.Contract, invoice.Entity, invoice.Warehouse, invoice.Notes,
			invoice.SubtotalAmount, invoice.VATAmount, invoice.DiscountAmount, invoice.TotalAmount, invoice.PaidAmount,
			invoice.Status, invoice.IsPosted, invoice.PostedDate, invoice.PostedBy, invoice.JournalEntryID,
			invoice.CreatedAt, invoice.CreatedBy, invoice.LastUpdatedAt, invoice.LastUpdatedBy,
		)
		if err != nil {
			return writeErr(err, "invoice", invoice.InvoiceNumber)
		}
		return insertInvoiceLines(ctx, tx, invoice)
	})
}

// ReplaceDraftInvoice rewrites the header and swaps the full line set. It refuses
// rows that were posted after the caller loaded them.
func (r *PgxInvoiceRepository) ReplaceDraftInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockDraftInvoice(ctx, tx, invoice.InvoiceID); err != nil {
			return err
		}

		query := `
			UPDATE invoices
			SET invoice_number = $2, invoice_date = $3, due_date = $4, document_type = $5, company_id = $6,
			    contract = $7, entity = $8, warehouse = $9, notes = $10,
			    subtotal_amount = $11, vat_amount = $12, discount_amount = $13, total_amount = $14,
			    last_updated_at = $15, last_updated_by = $16
			WHERE invoice_id = $1;
		`
		_, err := tx.Exec(ctx, query,
			invoice.InvoiceID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.DueDate, invoice.DocumentType, invoice.CompanyID,
			invoice.Contract, invoice.Entity, invoice.Warehouse, invoice.Notes,
			invoice.SubtotalAmount, invoice.VATAmount, invoice.DiscountAmount, invoice.TotalAmount,
			invoice.LastUpdatedAt, invoice.LastUpdatedBy,
		)
		if err != nil {
			return writeErr(err, "invoice", invoice.InvoiceNumber)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoice.InvoiceID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to clear lines for invoice "+invoice.InvoiceNumber, err)
		}
		return insertInvoiceLines(ctx, tx, invoice)
	})
}

func (r *PgxInvoiceRepository) DeleteDraftInvoice(ctx context.Context, invoiceID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockDraftInvoice(ctx, tx, invoiceID); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyPosted) {
				return fmt.Errorf("%w: invoice %s", apperrors.ErrCannotDeletePosted, invoiceID)
			}
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete invoice "+invoiceID, err)
		}
		return nil
	})
}

// SaveInvoicePosting writes the generated entry and flips the invoice to POSTED in
// one transaction. The invoice row stays locked from the posted check to the commit.
func (r *PgxInvoiceRepository) SaveInvoicePosting(ctx context.Context, invoiceID string, entry domain.JournalEntry, postedBy string, postedAt time.Time) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockDraftInvoice(ctx, tx, invoiceID); err != nil {
			return err
		}

		taken, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_number = $1);`, entry.EntryNumber)
		if err != nil {
			return queryErr(err, "journal entry number "+entry.EntryNumber)
		}
		if taken {
			return fmt.Errorf("%w %s", apperrors.ErrDuplicateEntryNumber, entry.EntryNumber)
		}

		if err := insertJournalEntry(ctx, tx, entry); err != nil {
			return err
		}

		query := `
			UPDATE invoices
			SET is_posted = TRUE, status = $2, posted_date = $3, posted_by = $4, journal_entry_id = $5,
			    last_updated_at = $3, last_updated_by = $4
			WHERE invoice_id = $1;
		`
		if _, err := tx.Exec(ctx, query, invoiceID, domain.InvoicePosted, postedAt, postedBy, entry.JournalEntryID); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to mark invoice "+invoiceID+" posted", err)
		}
		return nil
	})
}

// lockDraftInvoice takes a row lock and fails with ErrAlreadyPosted when the invoice is posted.
func lockDraftInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) error {
	var posted bool
	err := tx.QueryRow(ctx, `SELECT is_posted FROM invoices WHERE invoice_id = $1 FOR UPDATE;`, invoiceID).Scan(&posted)
	if err != nil {
		return notFoundOr(err, "invoice", invoiceID)
	}
	if posted {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, invoiceID)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = $1;`, invoiceID))
	if err != nil {
		return nil, notFoundOr(err, "invoice", invoiceID)
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceLineColumns+` FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_number;`, invoiceID)
	if err != nil {
		return nil, queryErr(err, "lines for invoice "+invoiceID)
	}
	defer rows.Close()

	inv.Lines = make([]domain.InvoiceLine, 0)
	for rows.Next() {
		var l domain.InvoiceLine
		if err := rows.Scan(
			&l.LineID, &l.InvoiceID, &l.LineNumber, &l.ItemID, &l.Description,
			&l.Quantity, &l.UnitPrice, &l.VATRate, &l.DiscountRate,
			&l.LineAmount, &l.DiscountAmount, &l.VATAmount, &l.NetAmount,
		); err != nil {
			return nil, queryErr(err, "lines for invoice "+invoiceID)
		}
		inv.Lines = append(inv.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "lines for invoice "+invoiceID)
	}
	return &inv, nil
}

func (r *PgxInvoiceRepository) ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	found, err := exists(ctx, r.Pool, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_number = $1);`, invoiceNumber)
	if err != nil {
		return false, queryErr(err, "invoice number "+invoiceNumber)
	}
	return found, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, companyID *string, limit, offset int) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($1::text IS NULL OR company_id = $1)
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, queryErr(err, "invoices")
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, queryErr(err, "invoices")
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "invoices")
	}
	return invoices, nil
}
