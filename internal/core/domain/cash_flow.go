package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType is the direction of a cash movement.
type FlowType string

const (
	Inflow  FlowType = "INFLOW"
	Outflow FlowType = "OUTFLOW"
)

// CashFlowCategory is the statement section a movement belongs to.
type CashFlowCategory string

const (
	Operating CashFlowCategory = "OPERATING"
	Investing CashFlowCategory = "INVESTING"
	Financing CashFlowCategory = "FINANCING"
)

// CashFlowItem is a configured line of the cash-flow statement.
type CashFlowItem struct {
	CashFlowItemID string           `json:"cashFlowItemID"`
	Code           string           `json:"code"`
	Description    string           `json:"description"`
	FlowType       FlowType         `json:"flowType"`
	Category       CashFlowCategory `json:"category"`
	DisplayOrder   *int             `json:"displayOrder,omitempty"`
	IsActive       bool             `json:"isActive"`
	AuditFields
}

// CashFlowTransaction is one cash movement tagged with an item.
type CashFlowTransaction struct {
	TransactionID     string           `json:"transactionID"`
	TransactionNumber string           `json:"transactionNumber"`
	TransactionDate   time.Time        `json:"transactionDate"`
	CashFlowItemID    string           `json:"cashFlowItemID"`
	FlowType          FlowType         `json:"flowType"`
	Category          CashFlowCategory `json:"category"`
	Amount            decimal.Decimal  `json:"amount"`
	Entity            *string          `json:"entity,omitempty"`
	Currency          string           `json:"currency"`
	JournalEntryID    *string          `json:"journalEntryID,omitempty"`
	IsPosted          bool             `json:"isPosted"`
	PostedDate        *time.Time       `json:"postedDate,omitempty"`
	ReferenceNumber   *string          `json:"referenceNumber,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	AuditFields

	// Item is populated by statement reads.
	Item *CashFlowItem `json:"-"`
}

// CashFlowFilter narrows a transaction read. Dates apply only when both are set.
type CashFlowFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Entity    *string
}

// HasDateRange reports whether both bounds are present.
func (f CashFlowFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// CashFlowLineItem is the aggregated amount for one item.
type CashFlowLineItem struct {
	ItemCode        string           `json:"itemCode"`
	ItemDescription string           `json:"itemDescription"`
	FlowType        FlowType         `json:"flowType"`
	Category        CashFlowCategory `json:"category"`
	Amount          decimal.Decimal  `json:"amount"`
	DisplayOrder    *int             `json:"displayOrder,omitempty"`
}

// CashFlowStatement is the rendered cash-flow statement for a period.
type CashFlowStatement struct {
	Title          string             `json:"title"`
	Entity         string             `json:"entity"`
	Currency       string             `json:"currency"`
	StartDate      *time.Time         `json:"startDate,omitempty"`
	EndDate        *time.Time         `json:"endDate,omitempty"`
	Period         string             `json:"period"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	InflowItems    []CashFlowLineItem `json:"inflowItems"`
	TotalInflow    decimal.Decimal    `json:"totalInflow"`
	OutflowItems   []CashFlowLineItem `json:"outflowItems"`
	TotalOutflow   decimal.Decimal    `json:"totalOutflow"`
	NetFlow        decimal.Decimal    `json:"netFlow"`
	ClosingBalance decimal.Decimal    `json:"closingBalance"`
}

// CalculateTotals fills the inflow/outflow totals, net flow and closing balance.
func (s *CashFlowStatement) CalculateTotals() {
	s.TotalInflow = decimal.Zero
	for _, it := range s.InflowItems {
		s.TotalInflow = s.TotalInflow.Add(it.Amount)
	}
	s.TotalOutflow = decimal.Zero
	for _, it := range s.OutflowItems {
		s.TotalOutflow = s.TotalOutflow.Add(it.Amount)
	}
	s.NetFlow = s.TotalInflow.Sub(s.TotalOutflow)
	s.ClosingBalance = s.OpeningBalance.Add(s.NetFlow)
}
