package domain

// CompanyType classifies a counterparty.
type CompanyType string

const (
	CompanyCustomer CompanyType = "CUSTOMER"
	CompanySupplier CompanyType = "SUPPLIER"
	CompanyBoth     CompanyType = "BOTH"
)

// Company is a customer and/or supplier that owns invoices.
type Company struct {
	CompanyID   string            `json:"companyID"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	CompanyType CompanyType       `json:"companyType"`
	TaxID       *string           `json:"taxID,omitempty"`
	IsActive    bool              `json:"isActive"`
	GLMapping   *CompanyGLMapping `json:"glMapping,omitempty"`
	AuditFields
}

// CompanyGLMapping links a company to the ledger accounts its documents affect.
// Every role is optional; a missing role only fails when a posting needs it.
type CompanyGLMapping struct {
	AccountsReceivable   *string `json:"accountsReceivable,omitempty"`
	AdvancesReceived     *string `json:"advancesReceived,omitempty"`
	PDCsReceived         *string `json:"pdcsReceived,omitempty"`
	ContractAssets       *string `json:"contractAssets,omitempty"`
	RetentionReceivables *string `json:"retentionReceivables,omitempty"`
	RetentionOutputVAT   *string `json:"retentionOutputVAT,omitempty"`
	AccountsPayable      *string `json:"accountsPayable,omitempty"`
	AdvancesPaid         *string `json:"advancesPaid,omitempty"`
	PDCsIssued           *string `json:"pdcsIssued,omitempty"`
	RetentionPayables    *string `json:"retentionPayables,omitempty"`
	RetentionInputVAT    *string `json:"retentionInputVAT,omitempty"`
	UnbilledPurchases    *string `json:"unbilledPurchases,omitempty"`
	AdvanceToReceive     *string `json:"advanceToReceive,omitempty"`
}

// AccountIDs lists every account referenced by the mapping.
func (m CompanyGLMapping) AccountIDs() []string {
	return collectIDs(
		m.AccountsReceivable, m.AdvancesReceived, m.PDCsReceived, m.ContractAssets,
		m.RetentionReceivables, m.RetentionOutputVAT, m.AccountsPayable, m.AdvancesPaid,
		m.PDCsIssued, m.RetentionPayables, m.RetentionInputVAT, m.UnbilledPurchases,
		m.AdvanceToReceive,
	)
}

// Item is a product or service that appears on invoice lines.
type Item struct {
	ItemID        string         `json:"itemID"`
	Code          string         `json:"code"`
	Description   string         `json:"description"`
	ItemType      string         `json:"itemType"`
	UnitOfMeasure string         `json:"unitOfMeasure"`
	IsActive      bool           `json:"isActive"`
	GLMapping     *ItemGLMapping `json:"glMapping,omitempty"`
	AuditFields
}

// ItemGLMapping links an item to revenue, expense and tax accounts.
type ItemGLMapping struct {
	GLAccount          *string `json:"glAccount,omitempty"`
	GoodsOnConsignment *string `json:"goodsOnConsignment,omitempty"`
	SalesRevenue       *string `json:"salesRevenue,omitempty"`
	TradeDiscounts     *string `json:"tradeDiscounts,omitempty"`
	CostOfGoodsSold    *string `json:"costOfGoodsSold,omitempty"`
	DeferredExpenses   *string `json:"deferredExpenses,omitempty"`
	OutputVAT          *string `json:"outputVAT,omitempty"`
	InputVAT           *string `json:"inputVAT,omitempty"`
}

// ExpenseAccount prefers the generic GL account and falls back to cost of goods sold.
func (m ItemGLMapping) ExpenseAccount() *string {
	if m.GLAccount != nil {
		return m.GLAccount
	}
	return m.CostOfGoodsSold
}

// AccountIDs lists every account referenced by the mapping.
func (m ItemGLMapping) AccountIDs() []string {
	return collectIDs(
		m.GLAccount, m.GoodsOnConsignment, m.SalesRevenue, m.TradeDiscounts,
		m.CostOfGoodsSold, m.DeferredExpenses, m.OutputVAT, m.InputVAT,
	)
}

func collectIDs(ids ...*string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == nil || *id == "" {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	return out
}
