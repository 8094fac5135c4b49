package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account increases.
type NormalBalance string

const (
	DebitBalance  NormalBalance = "DEBIT"
	CreditBalance NormalBalance = "CREDIT"
)

// DefaultNormalBalance returns the conventional side for an account type.
func DefaultNormalBalance(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitBalance
	default:
		return CreditBalance
	}
}

// Account is an entry in the chart of accounts. Its identity never changes once a
// posted journal line references it.
type Account struct {
	AccountID     string        `json:"accountID"`
	Code          string        `json:"code"`
	Description   string        `json:"description"`
	AccountType   AccountType   `json:"accountType"`
	NormalBalance NormalBalance `json:"normalBalance"`
	IsActive      bool          `json:"isActive"`
	AuditFields
}
