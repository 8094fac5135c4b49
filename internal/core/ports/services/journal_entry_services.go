package services

import (
	"context"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries.
type JournalEntryReaderSvc interface {
	GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalEntryWriterSvc drives the DRAFT -> POSTED -> REVERSED lifecycle.
type JournalEntryWriterSvc interface {
	// CreateJournalEntry stores a new DRAFT entry after checking lines and the entry number.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostJournalEntry re-validates the balance and moves the entry to POSTED.
	PostJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error)

	// ReverseJournalEntry moves a POSTED entry to REVERSED. No counter-entry is created.
	ReverseJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes a DRAFT entry.
	DeleteJournalEntry(ctx context.Context, journalEntryID string, actor string) error
}

// JournalEntrySvcFacade combines journal entry reads and writes.
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}
