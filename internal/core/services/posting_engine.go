package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

const invoiceEntryPrefix = "JE-INV-"

// entryBuilder appends lines to a journal entry, numbering them from 1.
type entryBuilder struct {
	entry   *domain.JournalEntry
	company *string
}

func (b *entryBuilder) debit(accountID string, amount decimal.Decimal, description string, itemID *string, qty *decimal.Decimal) {
	b.add(accountID, amount, decimal.Zero, description, itemID, qty)
}

func (b *entryBuilder) credit(accountID string, amount decimal.Decimal, description string, itemID *string, qty *decimal.Decimal) {
	b.add(accountID, decimal.Zero, amount, description, itemID, qty)
}

func (b *entryBuilder) add(accountID string, debit, credit decimal.Decimal, description string, itemID *string, qty *decimal.Decimal) {
	b.entry.Lines = append(b.entry.Lines, domain.JournalEntryLine{
		LineID:         uuid.NewString(),
		JournalEntryID: b.entry.JournalEntryID,
		LineNumber:     len(b.entry.Lines) + 1,
		AccountID:      accountID,
		Debit:          debit,
		Credit:         credit,
		Description:    description,
		ItemID:         itemID,
		CompanyID:      b.company,
		Quantity:       qty,
	})
}

// requireAccount turns an unmapped role into a configuration error.
func requireAccount(accountID *string, owner, role string) (string, error) {
	if accountID == nil || *accountID == "" {
		return "", apperrors.NewMissingGLError(owner, role)
	}
	return *accountID, nil
}

// buildInvoiceJournalEntry derives the DRAFT journal entry for an invoice from the
// company and item GL mappings. items must contain every item referenced by the lines.
// The returned entry is not yet balance-checked.
func buildInvoiceJournalEntry(
	invoice *domain.Invoice,
	company *domain.Company,
	items map[string]domain.Item,
	actor string,
	now time.Time,
) (*domain.JournalEntry, error) {
	companyOwner := fmt.Sprintf("company %s", company.Code)
	if company.GLMapping == nil {
		return nil, fmt.Errorf("%w: company %s has no GL mapping", apperrors.ErrMissingGLConfiguration, company.Code)
	}

	companyID := company.CompanyID
	entry := &domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryNumber:     invoiceEntryPrefix + invoice.InvoiceNumber,
		EntryDate:       invoice.InvoiceDate,
		DocumentType:    invoice.DocumentType,
		CompanyID:       &companyID,
		Description:     "Auto-posting for Invoice: " + invoice.InvoiceNumber,
		ReferenceNumber: &invoice.InvoiceNumber,
		Status:          domain.EntryDraft,
		Lines:           make([]domain.JournalEntryLine, 0, len(invoice.Lines)*3+1),
	}
	entry.StampCreated(actor, now)
	b := &entryBuilder{entry: entry, company: &companyID}

	customer := invoice.IsCustomerInvoice()
	for _, line := range invoice.Lines {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, apperrors.NewNotFoundError("item", line.ItemID)
		}
		itemOwner := fmt.Sprintf("item %s", item.Code)
		if item.GLMapping == nil {
			return nil, fmt.Errorf("%w: item %s has no GL mapping", apperrors.ErrMissingGLConfiguration, item.Code)
		}
		mapping := item.GLMapping
		itemID := item.ItemID
		qty := line.Quantity

		if customer {
			if err := postCustomerLine(b, line, mapping, itemOwner, &itemID, &qty); err != nil {
				return nil, err
			}
		} else {
			if err := postSupplierLine(b, line, mapping, itemOwner, &itemID, &qty); err != nil {
				return nil, err
			}
		}
	}

	ref := "Invoice " + invoice.InvoiceNumber
	if customer {
		ar, err := requireAccount(company.GLMapping.AccountsReceivable, companyOwner, "accounts receivable")
		if err != nil {
			return nil, err
		}
		b.debit(ar, invoice.TotalAmount, "AR - "+ref, nil, nil)
	} else {
		ap, err := requireAccount(company.GLMapping.AccountsPayable, companyOwner, "accounts payable")
		if err != nil {
			return nil, err
		}
		b.credit(ap, invoice.TotalAmount, "AP - "+ref, nil, nil)
	}

	entry.ComputeTotals()
	return entry, nil
}

// postCustomerLine credits revenue and output VAT. With a trade-discount account the
// revenue is credited gross and the discount debited, otherwise revenue is credited net.
func postCustomerLine(b *entryBuilder, line domain.InvoiceLine, m *domain.ItemGLMapping, owner string, itemID *string, qty *decimal.Decimal) error {
	revenue, err := requireAccount(m.SalesRevenue, owner, "sales revenue")
	if err != nil {
		return err
	}
	hasDiscount := line.DiscountAmount.IsPositive()
	discountMapped := m.TradeDiscounts != nil && *m.TradeDiscounts != ""

	revenueAmount := line.AmountAfterDiscount()
	if hasDiscount && discountMapped {
		revenueAmount = line.LineAmount
	}
	if revenueAmount.IsPositive() {
		b.credit(revenue, revenueAmount, "Sales - "+line.Description, itemID, qty)
	}

	if line.VATAmount.IsPositive() {
		outputVAT, err := requireAccount(m.OutputVAT, owner, "output VAT")
		if err != nil {
			return err
		}
		b.credit(outputVAT, line.VATAmount, "Output VAT - "+line.Description, itemID, nil)
	}

	if hasDiscount && discountMapped {
		b.debit(*m.TradeDiscounts, line.DiscountAmount, "Trade Discount - "+line.Description, itemID, nil)
	}
	return nil
}

// postSupplierLine debits the expense account (GL account, else COGS) and input VAT.
func postSupplierLine(b *entryBuilder, line domain.InvoiceLine, m *domain.ItemGLMapping, owner string, itemID *string, qty *decimal.Decimal) error {
	expense, err := requireAccount(m.ExpenseAccount(), owner, "expense or cost of goods sold")
	if err != nil {
		return err
	}
	if amount := line.AmountAfterDiscount(); amount.IsPositive() {
		b.debit(expense, amount, "Purchase - "+line.Description, itemID, qty)
	}

	if line.VATAmount.IsPositive() {
		inputVAT, err := requireAccount(m.InputVAT, owner, "input VAT")
		if err != nil {
			return err
		}
		b.debit(inputVAT, line.VATAmount, "Input VAT - "+line.Description, itemID, nil)
	}
	return nil
}
