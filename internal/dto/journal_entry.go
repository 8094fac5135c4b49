package dto

import (
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryLineRequest is one line of a manually entered journal entry.
type JournalEntryLineRequest struct {
	AccountID   string           `json:"accountID" binding:"required"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Description string           `json:"description" binding:"max=255"`
	ItemID      *string          `json:"itemID,omitempty"`
	CompanyID   *string          `json:"companyID,omitempty"`
	Warehouse   *string          `json:"warehouse,omitempty"`
	Contract    *string          `json:"contract,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

// CreateJournalEntryRequest defines the payload for creating a DRAFT journal entry.
type CreateJournalEntryRequest struct {
	EntryNumber     string                    `json:"entryNumber" binding:"required,max=50"`
	EntryDate       time.Time                 `json:"entryDate" binding:"required"`
	DocumentType    *domain.DocumentType      `json:"documentType,omitempty" binding:"omitempty,oneof=MANUAL CUSTOMER_INVOICE SUPPLIER_INVOICE"`
	CompanyID       *string                   `json:"companyID,omitempty"`
	Description     string                    `json:"description" binding:"max=500"`
	ReferenceNumber *string                   `json:"referenceNumber,omitempty"`
	Lines           []JournalEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListJournalEntriesParams holds the query parameters of the list endpoint.
type ListJournalEntriesParams struct {
	Status    *string `form:"status" binding:"omitempty,oneof=DRAFT POSTED REVERSED"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// JournalEntryLineResponse is a journal line as returned by the API.
type JournalEntryLineResponse struct {
	LineID      string           `json:"lineID"`
	LineNumber  int              `json:"lineNumber"`
	AccountID   string           `json:"accountID"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Description string           `json:"description"`
	ItemID      *string          `json:"itemID,omitempty"`
	CompanyID   *string          `json:"companyID,omitempty"`
	Warehouse   *string          `json:"warehouse,omitempty"`
	Contract    *string          `json:"contract,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

// JournalEntryResponse is the journal entry view.
type JournalEntryResponse struct {
	JournalEntryID  string                     `json:"journalEntryID"`
	EntryNumber     string                     `json:"entryNumber"`
	EntryDate       time.Time                  `json:"entryDate"`
	DocumentType    string                     `json:"documentType"`
	CompanyID       *string                    `json:"companyID,omitempty"`
	Description     string                     `json:"description"`
	ReferenceNumber *string                    `json:"referenceNumber,omitempty"`
	Status          string                     `json:"status"`
	TotalDebit      decimal.Decimal            `json:"totalDebit"`
	TotalCredit     decimal.Decimal            `json:"totalCredit"`
	Lines           []JournalEntryLineResponse `json:"lines,omitempty"`
	PostedDate      *time.Time                 `json:"postedDate,omitempty"`
	PostedBy        *string                    `json:"postedBy,omitempty"`
	ReversedDate    *time.Time                 `json:"reversedDate,omitempty"`
	ReversedBy      *string                    `json:"reversedBy,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
	CreatedBy       string                     `json:"createdBy"`
}

// ListJournalEntriesResponse is a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		JournalEntryID:  e.JournalEntryID,
		EntryNumber:     e.EntryNumber,
		EntryDate:       e.EntryDate,
		DocumentType:    string(e.DocumentType),
		CompanyID:       e.CompanyID,
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		Status:          string(e.Status),
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		PostedDate:      e.PostedDate,
		PostedBy:        e.PostedBy,
		ReversedDate:    e.ReversedDate,
		ReversedBy:      e.ReversedBy,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalEntryLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = JournalEntryLineResponse{
				LineID:      l.LineID,
				LineNumber:  l.LineNumber,
				AccountID:   l.AccountID,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Description: l.Description,
				ItemID:      l.ItemID,
				CompanyID:   l.CompanyID,
				Warehouse:   l.Warehouse,
				Contract:    l.Contract,
				Quantity:    l.Quantity,
			}
		}
	}
	return resp
}

// ToListJournalEntriesResponse wraps a page of entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalEntriesResponse{Entries: out, NextToken: nextToken}
}
