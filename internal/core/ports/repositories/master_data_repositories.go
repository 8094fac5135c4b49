package repositories

import (
	"context"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// AccountReader is the chart-of-accounts lookup used by the posting engine.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// FindMissingAccountIDs returns the subset of ids that do not exist.
	FindMissingAccountIDs(ctx context.Context, accountIDs []string) ([]string, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

// AccountWriter persists chart-of-accounts entries.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines account reads and writes.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// CompanyReader looks up companies and their GL mapping.
type CompanyReader interface {
	// FindCompanyByID returns the company with GLMapping populated when one exists.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error)
}

// CompanyWriter persists companies and their GL mapping.
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	// UpsertCompanyGLMapping replaces the mapping for a company.
	UpsertCompanyGLMapping(ctx context.Context, companyID string, mapping domain.CompanyGLMapping, userID string) error
}

// CompanyRepositoryFacade combines company reads and writes.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

// ItemReader looks up items and their GL mapping.
type ItemReader interface {
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	// FindItemsByIDs returns found items keyed by id; absent ids are simply missing from the map.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)
	ListItems(ctx context.Context, limit, offset int) ([]domain.Item, error)
}

// ItemWriter persists items and their GL mapping.
type ItemWriter interface {
	SaveItem(ctx context.Context, item domain.Item) error
	UpsertItemGLMapping(ctx context.Context, itemID string, mapping domain.ItemGLMapping, userID string) error
}

// ItemRepositoryFacade combines item reads and writes.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
