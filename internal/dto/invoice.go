package dto

import (
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest carries the inputs of a line. Amounts are always derived server-side.
type InvoiceLineRequest struct {
	ItemID       string          `json:"itemID" binding:"required"`
	Description  string          `json:"description" binding:"max=255"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	VATRate      decimal.Decimal `json:"vatRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`
}

// InvoiceRequest defines the payload for creating or replacing a DRAFT invoice.
type InvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required,max=50"`
	InvoiceDate   time.Time            `json:"invoiceDate" binding:"required"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	DocumentType  domain.DocumentType  `json:"documentType" binding:"required,oneof=CUSTOMER_INVOICE SUPPLIER_INVOICE"`
	CompanyID     string               `json:"companyID" binding:"required"`
	Contract      *string              `json:"contract,omitempty"`
	Entity        *string              `json:"entity,omitempty"`
	Warehouse     *string              `json:"warehouse,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
	Lines         []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// InvoiceLineResponse is an invoice line with its derived amounts.
type InvoiceLineResponse struct {
	LineID         string          `json:"lineID"`
	LineNumber     int             `json:"lineNumber"`
	ItemID         string          `json:"itemID"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	VATRate        decimal.Decimal `json:"vatRate"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	LineAmount     decimal.Decimal `json:"lineAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	NetAmount      decimal.Decimal `json:"netAmount"`
}

// InvoiceResponse is the invoice view.
type InvoiceResponse struct {
	InvoiceID      string                `json:"invoiceID"`
	InvoiceNumber  string                `json:"invoiceNumber"`
	InvoiceDate    time.Time             `json:"invoiceDate"`
	DueDate        *time.Time            `json:"dueDate,omitempty"`
	DocumentType   string                `json:"documentType"`
	CompanyID      string                `json:"companyID"`
	Contract       *string               `json:"contract,omitempty"`
	Entity         *string               `json:"entity,omitempty"`
	Warehouse      *string               `json:"warehouse,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
	SubtotalAmount decimal.Decimal       `json:"subtotalAmount"`
	VATAmount      decimal.Decimal       `json:"vatAmount"`
	DiscountAmount decimal.Decimal       `json:"discountAmount"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	PaidAmount     decimal.Decimal       `json:"paidAmount"`
	BalanceAmount  decimal.Decimal       `json:"balanceAmount"`
	Status         string                `json:"status"`
	IsPosted       bool                  `json:"isPosted"`
	PostedDate     *time.Time            `json:"postedDate,omitempty"`
	PostedBy       *string               `json:"postedBy,omitempty"`
	JournalEntryID *string               `json:"journalEntryID,omitempty"`
	Lines          []InvoiceLineResponse `json:"lines,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// PostedInvoiceResponse is returned by the post endpoint.
type PostedInvoiceResponse struct {
	Invoice      InvoiceResponse      `json:"invoice"`
	JournalEntry JournalEntryResponse `json:"journalEntry"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		DocumentType:   string(inv.DocumentType),
		CompanyID:      inv.CompanyID,
		Contract:       inv.Contract,
		Entity:         inv.Entity,
		Warehouse:      inv.Warehouse,
		Notes:          inv.Notes,
		SubtotalAmount: inv.SubtotalAmount,
		VATAmount:      inv.VATAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		BalanceAmount:  inv.Balance(),
		Status:         string(inv.Status),
		IsPosted:       inv.IsPosted,
		PostedDate:     inv.PostedDate,
		PostedBy:       inv.PostedBy,
		JournalEntryID: inv.JournalEntryID,
		CreatedAt:      inv.CreatedAt,
		CreatedBy:      inv.CreatedBy,
	}
	if len(inv.Lines) > 0 {
		resp.Lines = make([]InvoiceLineResponse, len(inv.Lines))
		for i, l := range inv.Lines {
			resp.Lines[i] = InvoiceLineResponse{
				LineID:         l.LineID,
				LineNumber:     l.LineNumber,
				ItemID:         l.ItemID,
				Description:    l.Description,
				Quantity:       l.Quantity,
				UnitPrice:      l.UnitPrice,
				VATRate:        l.VATRate,
				DiscountRate:   l.DiscountRate,
				LineAmount:     l.LineAmount,
				DiscountAmount: l.DiscountAmount,
				VATAmount:      l.VATAmount,
				NetAmount:      l.NetAmount,
			}
		}
	}
	return resp
}

// ToInvoiceResponses converts a list of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
