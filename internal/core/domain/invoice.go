package domain

import (
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft  InvoiceStatus = "DRAFT"
	InvoicePosted InvoiceStatus = "POSTED"
)

// InvoiceLine carries quantity, price and rates. All amounts are derived.
type InvoiceLine struct {
	LineID         string          `json:"lineID"`
	InvoiceID      string          `json:"invoiceID"`
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

// CalculateAmounts derives the line amounts in a fixed order, rounding half-up to
// two places after every multiplicative step.
func (l *InvoiceLine) CalculateAmounts() {
	l.Quantity = accounting.RoundQuantity(l.Quantity)
	l.VATRate = accounting.RoundQuantity(l.VATRate)
	l.DiscountRate = accounting.RoundQuantity(l.DiscountRate)

	l.LineAmount = accounting.RoundMoney(l.Quantity.Mul(l.UnitPrice))
	l.DiscountAmount = accounting.ApplyPercent(l.LineAmount, l.DiscountRate)
	afterDiscount := l.LineAmount.Sub(l.DiscountAmount)
	l.VATAmount = accounting.ApplyPercent(afterDiscount, l.VATRate)
	l.NetAmount = afterDiscount.Add(l.VATAmount)
}

// AmountAfterDiscount is the taxable base of the line.
func (l InvoiceLine) AmountAfterDiscount() decimal.Decimal {
	return l.LineAmount.Sub(l.DiscountAmount)
}

// Invoice is a customer or supplier invoice and the aggregate root for its lines.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	DocumentType   DocumentType    `json:"documentType"`
	CompanyID      string          `json:"companyID"`
	Contract       *string         `json:"contract,omitempty"`
	Entity         *string         `json:"entity,omitempty"`
	Warehouse      *string         `json:"warehouse,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	Lines          []InvoiceLine   `json:"lines"`
	SubtotalAmount decimal.Decimal `json:"subtotalAmount"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Status         InvoiceStatus   `json:"status"`
	IsPosted       bool            `json:"isPosted"`
	PostedDate     *time.Time      `json:"postedDate,omitempty"`
	PostedBy       *string         `json:"postedBy,omitempty"`
	JournalEntryID *string         `json:"journalEntryID,omitempty"`
	AuditFields
}

// CalculateTotals renumbers the lines, recomputes each one and rebuilds the header totals.
// total = subtotal + vat - discount
func (i *Invoice) CalculateTotals() {
	subtotal := decimal.Zero
	vat := decimal.Zero
	discount := decimal.Zero
	for idx := range i.Lines {
		line := &i.Lines[idx]
		line.LineNumber = idx + 1
		line.InvoiceID = i.InvoiceID
		line.CalculateAmounts()
		subtotal = subtotal.Add(line.LineAmount)
		vat = vat.Add(line.VATAmount)
		discount = discount.Add(line.DiscountAmount)
	}
	i.SubtotalAmount = subtotal
	i.VATAmount = vat
	i.DiscountAmount = discount
	i.TotalAmount = subtotal.Add(vat).Sub(discount)
}

// Balance is the amount still outstanding.
func (i Invoice) Balance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// IsCustomerInvoice reports whether the invoice is a sale.
func (i Invoice) IsCustomerInvoice() bool {
	return i.DocumentType == DocCustomerInvoice
}
