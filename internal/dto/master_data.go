package dto

import "github.com/SscSPs/accounts_backoffice/internal/core/domain"

// CreateAccountRequest defines the payload for adding a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code          string                `json:"code" binding:"required,max=20"`
	Description   string                `json:"description" binding:"required,max=255"`
	AccountType   domain.AccountType    `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	NormalBalance *domain.NormalBalance `json:"normalBalance,omitempty" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// CreateCompanyRequest defines the payload for creating a company.
type CreateCompanyRequest struct {
	Code        string             `json:"code" binding:"required,max=20"`
	Name        string             `json:"name" binding:"required,max=255"`
	CompanyType domain.CompanyType `json:"companyType" binding:"required,oneof=CUSTOMER SUPPLIER BOTH"`
	TaxID       *string            `json:"taxID,omitempty"`
}

// CompanyGLMappingRequest sets every company GL role at once; omitted roles are cleared.
type CompanyGLMappingRequest struct {
	AccountsReceivable   *string `json:"accountsReceivable"`
	AdvancesReceived     *string `json:"advancesReceived"`
	PDCsReceived         *string `json:"pdcsReceived"`
	ContractAssets       *string `json:"contractAssets"`
	RetentionReceivables *string `json:"retentionReceivables"`
	RetentionOutputVAT   *string `json:"retentionOutputVAT"`
	AccountsPayable      *string `json:"accountsPayable"`
	AdvancesPaid         *string `json:"advancesPaid"`
	PDCsIssued           *string `json:"pdcsIssued"`
	RetentionPayables    *string `json:"retentionPayables"`
	RetentionInputVAT    *string `json:"retentionInputVAT"`
	UnbilledPurchases    *string `json:"unbilledPurchases"`
	AdvanceToReceive     *string `json:"advanceToReceive"`
}

// ToDomain converts the request into the domain mapping.
func (r CompanyGLMappingRequest) ToDomain() domain.CompanyGLMapping {
	return domain.CompanyGLMapping{
		AccountsReceivable:   r.AccountsReceivable,
		AdvancesReceived:     r.AdvancesReceived,
		PDCsReceived:         r.PDCsReceived,
		ContractAssets:       r.ContractAssets,
		RetentionReceivables: r.RetentionReceivables,
		RetentionOutputVAT:   r.RetentionOutputVAT,
		AccountsPayable:      r.AccountsPayable,
		AdvancesPaid:         r.AdvancesPaid,
		PDCsIssued:           r.PDCsIssued,
		RetentionPayables:    r.RetentionPayables,
		RetentionInputVAT:    r.RetentionInputVAT,
		UnbilledPurchases:    r.UnbilledPurchases,
		AdvanceToReceive:     r.AdvanceToReceive,
	}
}

// CreateItemRequest defines the payload for creating an item.
type CreateItemRequest struct {
	Code          string  `json:"code" binding:"required,max=50"`
	Description   string  `json:"description" binding:"required,max=255"`
	ItemType      string  `json:"itemType" binding:"required,max=30"`
	UnitOfMeasure *string `json:"unitOfMeasure,omitempty" binding:"omitempty,max=20"`
}

// ItemGLMappingRequest sets every item GL role at once.
type ItemGLMappingRequest struct {
	GLAccount          *string `json:"glAccount"`
	GoodsOnConsignment *string `json:"goodsOnConsignment"`
	SalesRevenue       *string `json:"salesRevenue"`
	TradeDiscounts     *string `json:"tradeDiscounts"`
	CostOfGoodsSold    *string `json:"costOfGoodsSold"`
	DeferredExpenses   *string `json:"deferredExpenses"`
	OutputVAT          *string `json:"outputVAT"`
	InputVAT           *string `json:"inputVAT"`
}

// ToDomain converts the request into the domain mapping.
func (r ItemGLMappingRequest) ToDomain() domain.ItemGLMapping {
	return domain.ItemGLMapping{
		GLAccount:          r.GLAccount,
		GoodsOnConsignment: r.GoodsOnConsignment,
		SalesRevenue:       r.SalesRevenue,
		TradeDiscounts:     r.TradeDiscounts,
		CostOfGoodsSold:    r.CostOfGoodsSold,
		DeferredExpenses:   r.DeferredExpenses,
		OutputVAT:          r.OutputVAT,
		InputVAT:           r.InputVAT,
	}
}

// ListParams holds offset pagination for lookup lists.
type ListParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
