package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/platform/metrics"
)

const defaultJournalPageSize = 20

type journalEntryService struct {
	BaseService
	entryRepo portsrepo.JournalEntryRepositoryWithTx
}

// NewJournalEntryService creates the service driving the journal entry lifecycle.
func NewJournalEntryService(entryRepo portsrepo.JournalEntryRepositoryWithTx, options ...ServiceOption) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{entryRepo: entryRepo}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	return s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
}

func (s *journalEntryService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	var status *domain.JournalEntryStatus
	if params.Status != nil && *params.Status != "" {
		st := domain.JournalEntryStatus(strings.ToUpper(*params.Status))
		if !st.IsValid() {
			return nil, apperrors.NewValidationError("unknown journal entry status %q", *params.Status)
		}
		status = &st
	}

	entries, nextToken, err := s.entryRepo.ListJournalEntries(ctx, status, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	resp := dto.ToListJournalEntriesResponse(entries, nextToken)
	return &resp, nil
}

func (s *journalEntryService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	now := s.Now()
	docType := domain.DocManual
	if req.DocumentType != nil {
		docType = *req.DocumentType
	}

	entry := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryNumber:     strings.TrimSpace(req.EntryNumber),
		EntryDate:       req.EntryDate,
		DocumentType:    docType,
		CompanyID:       req.CompanyID,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Status:          domain.EntryDraft,
		Lines:           make([]domain.JournalEntryLine, len(req.Lines)),
	}
	entry.StampCreated(userID, now)

	for i, l := range req.Lines {
		entry.Lines[i] = domain.JournalEntryLine{
			LineID:         uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			LineNumber:     i + 1,
			AccountID:      l.AccountID,
			Debit:          l.Debit,
			Credit:         l.Credit,
			Description:    l.Description,
			ItemID:         l.ItemID,
			CompanyID:      l.CompanyID,
			Warehouse:      l.Warehouse,
			Contract:       l.Contract,
			Quantity:       l.Quantity,
		}
	}

	if err := entry.ValidateLines(); err != nil {
		return nil, err
	}
	entry.ComputeTotals()

	exists, err := s.entryRepo.ExistsByEntryNumber(ctx, entry.EntryNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check entry number", slog.String("entry_number", entry.EntryNumber))
		return nil, fmt.Errorf("failed to check entry number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w %s", apperrors.ErrDuplicateEntryNumber, entry.EntryNumber)
	}

	if err := s.entryRepo.SaveJournalEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_number", entry.EntryNumber))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.Int("line_count", len(entry.Lines)))
	return &entry, nil
}

func (s *journalEntryService) PostJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	if err := entry.Post(actor, s.Now()); err != nil {
		s.LogWarn(ctx, err, "Journal entry rejected for posting", slog.String("journal_entry_id", journalEntryID))
		s.Metrics.RecordPosting(string(entry.DocumentType), resultFor(err))
		return nil, err
	}
	if err := s.entryRepo.UpdateJournalEntryStatus(ctx, *entry, domain.EntryDraft); err != nil {
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	s.Metrics.RecordPosting(string(entry.DocumentType), metrics.ResultSuccess)
	s.LogInfo(ctx, "Journal entry posted", slog.String("journal_entry_id", journalEntryID))
	return entry, nil
}

func (s *journalEntryService) ReverseJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return nil, err
	}
	if err := entry.Reverse(actor, s.Now()); err != nil {
		return nil, err
	}
	if err := s.entryRepo.UpdateJournalEntryStatus(ctx, *entry, domain.EntryPosted); err != nil {
		s.LogError(ctx, err, "Failed to reverse journal entry", slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	s.LogInfo(ctx, "Journal entry reversed", slog.String("journal_entry_id", journalEntryID))
	return entry, nil
}

func (s *journalEntryService) DeleteJournalEntry(ctx context.Context, journalEntryID string, actor string) error {
	entry, err := s.entryRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		return err
	}
	if err := entry.CanDelete(); err != nil {
		return err
	}
	if err := s.entryRepo.DeleteDraftJournalEntry(ctx, journalEntryID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("journal_entry_id", journalEntryID))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("journal_entry_id", journalEntryID), slog.String("deleted_by", actor))
	return nil
}
