package services

import (
	"context"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, companyID *string, params dto.ListParams) ([]domain.Invoice, error)
}

// InvoiceWriterSvc manages DRAFT invoices.
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, req dto.InvoiceRequest, userID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, userID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error
}

// InvoicePostingSvc turns an invoice into a balanced journal entry.
type InvoicePostingSvc interface {
	// PostInvoice builds the entry from GL mappings, validates it and persists it
	// together with the invoice's posted flag.
	PostInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, *domain.JournalEntry, error)
}

// InvoiceSvcFacade combines all invoice operations.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoicePostingSvc
}
