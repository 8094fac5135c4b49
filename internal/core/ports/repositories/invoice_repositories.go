package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error)
	// ListInvoices returns invoices without lines. A nil companyID lists all companies.
	ListInvoices(ctx context.Context, companyID *string, limit, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoices. The invoice owns its lines:
// header and lines are always written together.
type InvoiceWriter interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// ReplaceDraftInvoice rewrites header and lines of an unposted invoice.
	ReplaceDraftInvoice(ctx context.Context, invoice domain.Invoice) error

	DeleteDraftInvoice(ctx context.Context, invoiceID string) error

	// SaveInvoicePosting persists the generated entry and marks the invoice posted
	// as one unit. It re-checks the posted flag under a row lock and returns
	// apperrors.ErrAlreadyPosted without side effects if another caller won.
	SaveInvoicePosting(ctx context.Context, invoiceID string, entry domain.JournalEntry, postedBy string, postedAt time.Time) error
}

// InvoiceRepositoryFacade combines reads and writes.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
