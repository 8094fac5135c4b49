package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/platform/metrics"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	companyRepo portsrepo.CompanyReader
	itemRepo    portsrepo.ItemReader
}

// NewInvoiceService creates the invoice service, including the posting engine.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	itemRepo portsrepo.ItemReader,
	options ...ServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		itemRepo:    itemRepo,
	}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, companyID *string, params dto.ListParams) ([]domain.Invoice, error) {
	limit, offset := normalizeListParams(params)
	return s.invoiceRepo.ListInvoices(ctx, companyID, limit, offset)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest, userID string) (*domain.Invoice, error) {
	invoice := s.invoiceFromRequest(uuid.NewString(), req)
	invoice.PaidAmount = decimal.Zero
	invoice.Status = domain.InvoiceDraft
	invoice.StampCreated(userID, s.Now())

	if err := s.checkReferences(ctx, &invoice); err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByInvoiceNumber(ctx, invoice.InvoiceNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check invoice number", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, invoice.InvoiceNumber)
	}

	invoice.CalculateTotals()
	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.TotalAmount.StringFixed(2)))
	return &invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, userID string) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if existing.IsPosted {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, existing.InvoiceNumber)
	}

	invoice := s.invoiceFromRequest(invoiceID, req)
	invoice.PaidAmount = existing.PaidAmount
	invoice.Status = existing.Status
	invoice.AuditFields = existing.AuditFields
	invoice.StampUpdated(userID, s.Now())

	if err := s.checkReferences(ctx, &invoice); err != nil {
		return nil, err
	}
	if invoice.InvoiceNumber != existing.InvoiceNumber {
		exists, err := s.invoiceRepo.ExistsByInvoiceNumber(ctx, invoice.InvoiceNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check invoice number: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
	}

	invoice.CalculateTotals()
	if err := s.invoiceRepo.ReplaceDraftInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_id", invoiceID))
	return &invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.IsPosted {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrCannotDeletePosted, invoice.InvoiceNumber)
	}
	if err := s.invoiceRepo.DeleteDraftInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID), slog.String("deleted_by", userID))
	return nil
}

// PostInvoice generates the journal entry for a DRAFT invoice and persists both atomically.
func (s *invoiceService) PostInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, *domain.JournalEntry, error) {
	logger := s.GetLogger(ctx).With(slog.String("invoice_id", invoiceID))

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	document := string(invoice.DocumentType)

	if invoice.IsPosted {
		s.Metrics.RecordPosting(document, metrics.ResultRejected)
		return nil, nil, fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, invoice.InvoiceNumber)
	}

	// Stored amounts are never trusted for posting.
	invoice.CalculateTotals()
	if !invoice.TotalAmount.IsPositive() {
		s.Metrics.RecordPosting(document, metrics.ResultRejected)
		return nil, nil, apperrors.NewValidationError("invoice %s has no amount to post", invoice.InvoiceNumber)
	}

	entry, err := s.buildEntry(ctx, invoice, actor)
	if err != nil {
		logger.Warn("Invoice rejected for posting", slog.String("error", err.Error()))
		s.Metrics.RecordPosting(document, resultFor(err))
		return nil, nil, err
	}

	if err := entry.ValidateLines(); err != nil {
		return nil, nil, s.failGenerated(ctx, document, err, entry)
	}
	now := s.Now()
	if err := entry.Post(actor, now); err != nil {
		return nil, nil, s.failGenerated(ctx, document, err, entry)
	}

	if err := s.invoiceRepo.SaveInvoicePosting(ctx, invoice.InvoiceID, *entry, actor, now); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyPosted) {
			logger.Warn("Invoice posted concurrently")
			s.Metrics.RecordPosting(document, metrics.ResultRejected)
			return nil, nil, err
		}
		logger.Error("Failed to persist invoice posting", slog.String("error", err.Error()))
		s.Metrics.RecordPosting(document, metrics.ResultError)
		return nil, nil, err
	}

	invoice.Status = domain.InvoicePosted
	invoice.IsPosted = true
	invoice.PostedDate = &now
	invoice.PostedBy = &actor
	invoice.JournalEntryID = &entry.JournalEntryID
	invoice.StampUpdated(actor, now)

	s.Metrics.RecordPosting(document, metrics.ResultSuccess)
	logger.Info("Invoice posted",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("total", entry.TotalDebit.StringFixed(2)))
	return invoice, entry, nil
}

func (s *invoiceService) buildEntry(ctx context.Context, invoice *domain.Invoice, actor string) (*domain.JournalEntry, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, invoice.CompanyID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindItemsByIDs(ctx, lineItemIDs(invoice.Lines))
	if err != nil {
		return nil, err
	}
	return buildInvoiceJournalEntry(invoice, company, items, actor, s.Now())
}

// failGenerated reports a generated entry that did not validate. That is an engine fault,
// never a user error.
func (s *invoiceService) failGenerated(ctx context.Context, document string, cause error, entry *domain.JournalEntry) error {
	s.LogError(ctx, cause, "Generated journal entry failed validation",
		slog.String("entry_number", entry.EntryNumber),
		slog.String("total_debit", entry.TotalDebit.StringFixed(2)),
		slog.String("total_credit", entry.TotalCredit.StringFixed(2)))
	s.Metrics.RecordPosting(document, metrics.ResultError)
	return fmt.Errorf("%w: %s", apperrors.ErrUnbalancedGeneratedEntry, cause.Error())
}

func (s *invoiceService) invoiceFromRequest(invoiceID string, req dto.InvoiceRequest) domain.Invoice {
	invoice := domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: strings.TrimSpace(req.InvoiceNumber),
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		DocumentType:  req.DocumentType,
		CompanyID:     req.CompanyID,
		Contract:      req.Contract,
		Entity:        req.Entity,
		Warehouse:     req.Warehouse,
		Notes:         req.Notes,
		Lines:         make([]domain.InvoiceLine, len(req.Lines)),
	}
	for i, l := range req.Lines {
		invoice.Lines[i] = domain.InvoiceLine{
			LineID:       uuid.NewString(),
			ItemID:       l.ItemID,
			Description:  l.Description,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			VATRate:      l.VATRate,
			DiscountRate: l.DiscountRate,
		}
	}
	return invoice
}

// checkReferences validates inputs the binding tags cannot express and confirms the
// company and items exist.
func (s *invoiceService) checkReferences(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.DocumentType != domain.DocCustomerInvoice && invoice.DocumentType != domain.DocSupplierInvoice {
		return apperrors.NewValidationError("unsupported invoice document type %q", invoice.DocumentType)
	}
	if len(invoice.Lines) == 0 {
		return apperrors.NewValidationError("invoice must have at least one line")
	}
	for i, l := range invoice.Lines {
		if !l.Quantity.IsPositive() {
			return apperrors.NewValidationError("line %d: quantity must be positive", i+1)
		}
		if l.UnitPrice.IsNegative() || l.VATRate.IsNegative() || l.DiscountRate.IsNegative() {
			return apperrors.NewValidationError("line %d: price and rates cannot be negative", i+1)
		}
		if l.DiscountRate.GreaterThan(decimal.NewFromInt(100)) {
			return apperrors.NewValidationError("line %d: discount rate cannot exceed 100", i+1)
		}
	}

	if _, err := s.companyRepo.FindCompanyByID(ctx, invoice.CompanyID); err != nil {
		return err
	}
	ids := lineItemIDs(invoice.Lines)
	found, err := s.itemRepo.FindItemsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return apperrors.NewNotFoundError("item", id)
		}
	}
	return nil
}

func lineItemIDs(lines []domain.InvoiceLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	return ids
}
