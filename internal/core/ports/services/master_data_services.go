package services

import (
	"context"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListParams) ([]domain.Account, error)
}

// CompanySvc manages companies and their GL mapping.
type CompanySvc interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, params dto.ListParams) ([]domain.Company, error)
	SetCompanyGLMapping(ctx context.Context, companyID string, req dto.CompanyGLMappingRequest, userID string) (*domain.Company, error)
}

// ItemSvc manages items and their GL mapping.
type ItemSvc interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, params dto.ListParams) ([]domain.Item, error)
	SetItemGLMapping(ctx context.Context, itemID string, req dto.ItemGLMappingRequest, userID string) (*domain.Item, error)
}

// MasterDataSvcFacade combines the lookup services.
type MasterDataSvcFacade interface {
	AccountSvc
	CompanySvc
	ItemSvc
}
