package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/accounts_backoffice/internal/utils/pagination"
)

const journalEntryColumns = `journal_entry_id, entry_number, entry_date, document_type, company_id,
	description, reference_number, status, total_debit, total_credit,
	posted_date, posted_by, reversed_date, reversed_by,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries and their lines.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) *PgxJournalEntryRepository {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalEntryRepositoryWithTx = (*PgxJournalEntryRepository)(nil)

func scanJournalEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.JournalEntryID, &e.EntryNumber, &e.EntryDate, &e.DocumentType, &e.CompanyID,
		&e.Description, &e.ReferenceNumber, &e.Status, &e.TotalDebit, &e.TotalCredit,
		&e.PostedDate, &e.PostedBy, &e.ReversedDate, &e.ReversedBy,
		&e.CreatedAt, &e.CreatedBy, &e.LastUpdatedAt, &e.LastUpdatedBy,
	)
	return e, err
}

// insertJournalEntry writes the header and queues every line as one batch on q.
// Callers own the surrounding transaction.
func insertJournalEntry(ctx context.Context, q querier, entry domain.JournalEntry) error {
	headerQuery := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := q.Exec(ctx, headerQuery,
		entry.JournalEntryID, entry.EntryNumber, entry.EntryDate, entry.DocumentType, entry.CompanyID,
		entry.Description, entry.ReferenceNumber, entry.Status, entry.TotalDebit, entry.TotalCredit,
		entry.PostedDate, entry.PostedBy, entry.ReversedDate, entry.ReversedBy,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return writeErr(err, "journal entry", entry.EntryNumber)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, journal_entry_id, line_number, account_id, debit, credit,
		                                 description, item_id, company_id, warehouse, contract, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, l := range entry.Lines {
		batch.Queue(lineQuery,
			l.LineID, entry.JournalEntryID, l.LineNumber, l.AccountID, l.Debit, l.Credit,
			l.Description, l.ItemID, l.CompanyID, l.Warehouse, l.Contract, l.Quantity,
		)
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry lines for "+entry.EntryNumber, err)
	}
	return nil
}

// SaveJournalEntry inserts the header and all lines in one transaction.
func (r *PgxJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return insertJournalEntry(ctx, tx, entry)
	})
}

func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	entry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		return nil, notFoundOr(err, "journal entry", journalEntryID)
	}

	lines, err := r.findLines(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return &entry, nil
}

func (r *PgxJournalEntryRepository) findLines(ctx context.Context, journalEntryID string) ([]domain.JournalEntryLine, error) {
	query := `
		SELECT line_id, journal_entry_id, line_number, account_id, debit, credit,
		       description, item_id, company_id, warehouse, contract, quantity
		FROM journal_entry_lines
		WHERE journal_entry_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, journalEntryID)
	if err != nil {
		return nil, queryErr(err, "lines for journal entry "+journalEntryID)
	}
	defer rows.Close()

	lines := make([]domain.JournalEntryLine, 0)
	for rows.Next() {
		var l domain.JournalEntryLine
		if err := rows.Scan(
			&l.LineID, &l.JournalEntryID, &l.LineNumber, &l.AccountID, &l.Debit, &l.Credit,
			&l.Description, &l.ItemID, &l.CompanyID, &l.Warehouse, &l.Contract, &l.Quantity,
		); err != nil {
			return nil, queryErr(err, "lines for journal entry "+journalEntryID)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(err, "lines for journal entry "+journalEntryID)
	}
	return lines, nil
}

func (r *PgxJournalEntryRepository) ExistsByEntryNumber(ctx context.Context, entryNumber string) (bool, error) {
	found, err := exists(ctx, r.Pool, `SELECT EXISTS (SELECT 1 FROM journal_entries WHERE entry_number = $1);`, entryNumber)
	if err != nil {
		return false, queryErr(err, "journal entry number "+entryNumber)
	}
	return found, nil
}

// ListJournalEntries pages by (entry_date, created_at) descending. One extra row is
// fetched to decide whether a next token is needed.
func (r *PgxJournalEntryRepository) ListJournalEntries(ctx context.Context, status *domain.JournalEntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE TRUE`
	args := []any{}
	if status != nil {
		args = append(args, *status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken: %v", err)
		}
		args = append(args, lastDate, lastCreatedAt)
		query += fmt.Sprintf(` AND (entry_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, queryErr(err, "journal entries")
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, nil, queryErr(err, "journal entries")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, queryErr(err, "journal entries")
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}
	return entries, nextTokenVal, nil
}

// UpdateJournalEntryStatus is a compare-and-set on status. When nothing matched it
// looks the row up again to tell a missing entry from a concurrent transition.
func (r *PgxJournalEntryRepository) UpdateJournalEntryStatus(ctx context.Context, entry domain.JournalEntry, from domain.JournalEntryStatus) error {
	query := `
		UPDATE journal_entries
		SET status = $3, total_debit = $4, total_credit = $5,
		    posted_date = $6, posted_by = $7, reversed_date = $8, reversed_by = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE journal_entry_id = $1 AND status = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		entry.JournalEntryID, from, entry.Status, entry.TotalDebit, entry.TotalCredit,
		entry.PostedDate, entry.PostedBy, entry.ReversedDate, entry.ReversedBy,
		entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update journal entry "+entry.JournalEntryID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current domain.JournalEntryStatus
	err = r.Pool.QueryRow(ctx, `SELECT status FROM journal_entries WHERE journal_entry_id = $1;`, entry.JournalEntryID).Scan(&current)
	if err != nil {
		return notFoundOr(err, "journal entry", entry.JournalEntryID)
	}
	return transitionConflict(entry.EntryNumber, from, current)
}

func transitionConflict(entryNumber string, from, current domain.JournalEntryStatus) error {
	switch {
	case from == domain.EntryDraft:
		return fmt.Errorf("%w: entry %s is %s", apperrors.ErrAlreadyPosted, entryNumber, current)
	case from == domain.EntryPosted:
		return fmt.Errorf("%w: entry %s is %s", apperrors.ErrNotPosted, entryNumber, current)
	default:
		return fmt.Errorf("%w: entry %s is %s, expected %s", apperrors.ErrInvalidState, entryNumber, current, from)
	}
}

// DeleteDraftJournalEntry removes a DRAFT entry; lines go with it through ON DELETE CASCADE.
func (r *PgxJournalEntryRepository) DeleteDraftJournalEntry(ctx context.Context, journalEntryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE journal_entry_id = $1 AND status = $2;`,
		journalEntryID, domain.EntryDraft)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete journal entry "+journalEntryID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current domain.JournalEntryStatus
	err = r.Pool.QueryRow(ctx, `SELECT status FROM journal_entries WHERE journal_entry_id = $1;`, journalEntryID).Scan(&current)
	if err != nil {
		return notFoundOr(err, "journal entry", journalEntryID)
	}
	return fmt.Errorf("%w: entry %s is %s", apperrors.ErrCannotDeletePosted, journalEntryID, current)
}
