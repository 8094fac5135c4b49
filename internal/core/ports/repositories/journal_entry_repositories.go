package repositories

import (
	"context"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entries.
type JournalEntryReader interface {
	// FindJournalEntryByID returns the entry with its lines ordered by line number.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ExistsByEntryNumber reports whether the natural key is taken.
	ExistsByEntryNumber(ctx context.Context, entryNumber string) (bool, error)

	// ListJournalEntries returns a page of entries (without lines), newest first.
	// A nil status lists every status.
	ListJournalEntries(ctx context.Context, status *domain.JournalEntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entries.
type JournalEntryWriter interface {
	// SaveJournalEntry inserts the header and all lines in one transaction.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntryStatus moves an entry from one status to another.
	// It returns apperrors.ErrNotFound when no row has the id, and apperrors.ErrInvalidState
	// when the stored status is no longer `from`.
	UpdateJournalEntryStatus(ctx context.Context, entry domain.JournalEntry, from domain.JournalEntryStatus) error

	// DeleteDraftJournalEntry removes a DRAFT entry and its lines.
	DeleteDraftJournalEntry(ctx context.Context, journalEntryID string) error
}

// JournalEntryRepositoryFacade combines reads and writes.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalEntryRepositoryWithTx extends the facade with transaction control.
type JournalEntryRepositoryWithTx interface {
	JournalEntryRepositoryFacade
	TransactionManager
}
