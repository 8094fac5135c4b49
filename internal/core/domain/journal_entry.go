package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates where a journal entry is in its lifecycle.
type JournalEntryStatus string

const (
	EntryDraft    JournalEntryStatus = "DRAFT"
	EntryPosted   JournalEntryStatus = "POSTED"
	EntryReversed JournalEntryStatus = "REVERSED"
)

// IsValid reports whether the status is one of the known states.
func (s JournalEntryStatus) IsValid() bool {
	switch s {
	case EntryDraft, EntryPosted, EntryReversed:
		return true
	}
	return false
}

// DocumentType identifies the business document behind a journal entry.
type DocumentType string

const (
	DocManual          DocumentType = "MANUAL"
	DocCustomerInvoice DocumentType = "CUSTOMER_INVOICE"
	DocSupplierInvoice DocumentType = "SUPPLIER_INVOICE"
)

// JournalEntryLine is one debit or credit against a single account.
// Dimensions (item, company, warehouse, contract, quantity) are analytical only.
type JournalEntryLine struct {
	LineID         string           `json:"lineID"`
	JournalEntryID string           `json:"journalEntryID"`
	LineNumber     int              `json:"lineNumber"`
	AccountID      string           `json:"accountID"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	Description    string           `json:"description"`
	ItemID         *string          `json:"itemID,omitempty"`
	CompanyID      *string          `json:"companyID,omitempty"`
	Warehouse      *string          `json:"warehouse,omitempty"`
	Contract       *string          `json:"contract,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
}

// Validate enforces that exactly one side is non-zero and neither side is negative.
func (l JournalEntryLine) Validate() error {
	if l.AccountID == "" {
		return apperrors.NewValidationError("line %d: account is required", l.LineNumber)
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return apperrors.NewValidationError("line %d: amounts cannot be negative", l.LineNumber)
	}
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return apperrors.NewValidationError("line %d: exactly one of debit or credit must be non-zero", l.LineNumber)
	}
	return nil
}

// JournalEntry is a balanced set of ledger lines representing one accounting event.
type JournalEntry struct {
	JournalEntryID  string             `json:"journalEntryID"`
	EntryNumber     string             `json:"entryNumber"`
	EntryDate       time.Time          `json:"entryDate"`
	DocumentType    DocumentType       `json:"documentType"`
	CompanyID       *string            `json:"companyID,omitempty"`
	Description     string             `json:"description"`
	ReferenceNumber *string            `json:"referenceNumber,omitempty"`
	Status          JournalEntryStatus `json:"status"`
	TotalDebit      decimal.Decimal    `json:"totalDebit"`
	TotalCredit     decimal.Decimal    `json:"totalCredit"`
	Lines           []JournalEntryLine `json:"lines"`
	PostedDate      *time.Time         `json:"postedDate,omitempty"`
	PostedBy        *string            `json:"postedBy,omitempty"`
	ReversedDate    *time.Time         `json:"reversedDate,omitempty"`
	ReversedBy      *string            `json:"reversedBy,omitempty"`
	AuditFields
}

// ComputeTotals recomputes both totals from the current lines.
func (e *JournalEntry) ComputeTotals() {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	e.TotalDebit = debit
	e.TotalCredit = credit
}

// ValidateBalance recomputes totals from lines rather than trusting stored values.
func (e *JournalEntry) ValidateBalance() error {
	e.ComputeTotals()
	if !e.TotalDebit.Equal(e.TotalCredit) {
		return fmt.Errorf("%w: debit %s, credit %s", apperrors.ErrUnbalancedEntry,
			e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
	}
	return nil
}

// ValidateLines checks every line and that the entry has at least two of them.
func (e *JournalEntry) ValidateLines() error {
	if len(e.Lines) < 2 {
		return apperrors.NewValidationError("journal entry must have at least two lines")
	}
	for _, l := range e.Lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Post moves a DRAFT entry to POSTED after re-checking the balance.
func (e *JournalEntry) Post(by string, at time.Time) error {
	if e.Status != EntryDraft {
		return fmt.Errorf("%w: entry %s is %s", apperrors.ErrAlreadyPosted, e.EntryNumber, e.Status)
	}
	if err := e.ValidateBalance(); err != nil {
		return err
	}
	e.Status = EntryPosted
	e.PostedDate = &at
	e.PostedBy = &by
	e.StampUpdated(by, at)
	return nil
}

// Reverse marks a POSTED entry as REVERSED. No counter-entry is generated.
func (e *JournalEntry) Reverse(by string, at time.Time) error {
	if e.Status != EntryPosted {
		return fmt.Errorf("%w: entry %s is %s", apperrors.ErrNotPosted, e.EntryNumber, e.Status)
	}
	e.Status = EntryReversed
	e.ReversedDate = &at
	e.ReversedBy = &by
	e.StampUpdated(by, at)
	return nil
}

// CanDelete reports whether the entry may be removed.
func (e *JournalEntry) CanDelete() error {
	if e.Status != EntryDraft {
		return fmt.Errorf("%w: entry %s is %s", apperrors.ErrCannotDeletePosted, e.EntryNumber, e.Status)
	}
	return nil
}
