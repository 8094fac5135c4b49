package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityTransactionType names the movement an equity transaction records.
type EquityTransactionType string

const (
	EquityOpeningBalance           EquityTransactionType = "OPENING_BALANCE"
	EquityProfitForYear            EquityTransactionType = "PROFIT_FOR_YEAR"
	EquityOCIDefinedBenefit        EquityTransactionType = "OCI_DEFINED_BENEFIT"
	EquityOCIFairValue             EquityTransactionType = "OCI_FAIR_VALUE"
	EquityIssueOrdinaryShares      EquityTransactionType = "ISSUE_ORDINARY_SHARES"
	EquityTreasuryShares           EquityTransactionType = "TREASURY_SHARES_TRANSACTION"
	EquityOwnershipChanges         EquityTransactionType = "OWNERSHIP_CHANGES"
	EquityDividends                EquityTransactionType = "DIVIDENDS"
	EquityShareholderContributions EquityTransactionType = "SHAREHOLDER_CONTRIBUTIONS"
	EquityOther                    EquityTransactionType = "OTHER_EQUITY"
)

// IsValid reports whether t is a known transaction type.
func (t EquityTransactionType) IsValid() bool {
	switch t {
	case EquityOpeningBalance, EquityProfitForYear, EquityOCIDefinedBenefit, EquityOCIFairValue,
		EquityIssueOrdinaryShares, EquityTreasuryShares, EquityOwnershipChanges, EquityDividends,
		EquityShareholderContributions, EquityOther:
		return true
	}
	return false
}

// EquityAccount is one column of the statement of changes in equity.
// AccountType is the column key, e.g. ISSUED_SHARE_CAPITAL.
type EquityAccount struct {
	EquityAccountID string  `json:"equityAccountID"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	AccountType     string  `json:"accountType"`
	DisplayOrder    int     `json:"displayOrder"`
	IsActive        bool    `json:"isActive"`
	Description     *string `json:"description,omitempty"`
	AuditFields
}

// EquityTransaction is a dated movement on one equity account in one fiscal year.
type EquityTransaction struct {
	TransactionID     string                `json:"transactionID"`
	TransactionNumber string                `json:"transactionNumber"`
	TransactionDate   time.Time             `json:"transactionDate"`
	EquityAccountID   string                `json:"equityAccountID"`
	TransactionType   EquityTransactionType `json:"transactionType"`
	Amount            decimal.Decimal       `json:"amount"`
	FiscalYear        int                   `json:"fiscalYear"`
	FiscalPeriod      *int                  `json:"fiscalPeriod,omitempty"`
	CompanyName       *string               `json:"companyName,omitempty"`
	JournalEntryID    *string               `json:"journalEntryID,omitempty"`
	IsPosted          bool                  `json:"isPosted"`
	PostedDate        *time.Time            `json:"postedDate,omitempty"`
	ReferenceNumber   *string               `json:"referenceNumber,omitempty"`
	Notes             *string               `json:"notes,omitempty"`
	AuditFields
}

// EquityAmountAggregate is one row of the grouped sum (account, type, year).
type EquityAmountAggregate struct {
	EquityAccountID string
	TransactionType EquityTransactionType
	FiscalYear      int
	Amount          decimal.Decimal
}

// Statement row types.
const (
	RowOpening       = "OPENING"
	RowSectionHeader = "SECTION_HEADER"
	RowTransaction   = "TRANSACTION"
	RowTotal         = "TOTAL"
	RowClosing       = "CLOSING"
)

// TotalColumnKey is the synthetic column summing every equity account.
const TotalColumnKey = "TOTAL"

// EquityStatementColumn describes one column of the statement.
type EquityStatementColumn struct {
	AccountType  string `json:"accountType"`
	ColumnName   string `json:"columnName"`
	DisplayOrder int    `json:"displayOrder"`
}

// EquityStatementRow carries one value per column keyed by account type, plus TOTAL.
type EquityStatementRow struct {
	RowID          string                     `json:"rowID"`
	RowDescription string                     `json:"rowDescription"`
	RowType        string                     `json:"rowType"`
	Category       string                     `json:"category,omitempty"`
	IsBold         bool                       `json:"isBold"`
	IsItalic       bool                       `json:"isItalic"`
	IsTotal        bool                       `json:"isTotal"`
	IndentLevel    int                        `json:"indentLevel"`
	Values         map[string]decimal.Decimal `json:"values"`
}

// EquityStatement is the rendered statement of changes in equity.
type EquityStatement struct {
	Title       string                  `json:"title"`
	CompanyName string                  `json:"companyName"`
	Currency    string                  `json:"currency"`
	Period      string                  `json:"period"`
	StartYear   int                     `json:"startYear"`
	EndYear     int                     `json:"endYear"`
	Columns     []EquityStatementColumn `json:"columns"`
	Rows        []EquityStatementRow    `json:"rows"`
}
