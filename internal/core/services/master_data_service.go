package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// masterDataService manages the lookup data the posting engine reads:
// accounts, companies, items and their GL mappings.
type masterDataService struct {
	BaseService
	accountRepo          portsrepo.AccountRepositoryFacade
	companyRepo          portsrepo.CompanyRepositoryFacade
	itemRepo             portsrepo.ItemRepositoryFacade
	defaultUnitOfMeasure string
}

// NewMasterDataService creates the lookup service. defaultUnitOfMeasure is applied
// to items created without one.
func NewMasterDataService(
	accountRepo portsrepo.AccountRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	itemRepo portsrepo.ItemRepositoryFacade,
	defaultUnitOfMeasure string,
	options ...ServiceOption,
) portssvc.MasterDataSvcFacade {
	svc := &masterDataService{
		accountRepo:          accountRepo,
		companyRepo:          companyRepo,
		itemRepo:             itemRepo,
		defaultUnitOfMeasure: defaultUnitOfMeasure,
	}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

func normalizeListParams(p dto.ListParams) (int, int) {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *masterDataService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	existing, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code", slog.String("code", code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, code)
	}

	normal := domain.DefaultNormalBalance(req.AccountType)
	if req.NormalBalance != nil {
		normal = *req.NormalBalance
	}

	account := domain.Account{
		AccountID:     uuid.NewString(),
		Code:          code,
		Description:   req.Description,
		AccountType:   req.AccountType,
		NormalBalance: normal,
		IsActive:      true,
	}
	account.StampCreated(userID, s.Now())

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

func (s *masterDataService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *masterDataService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, strings.TrimSpace(code))
}

func (s *masterDataService) ListAccounts(ctx context.Context, params dto.ListParams) ([]domain.Account, error) {
	limit, offset := normalizeListParams(params)
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *masterDataService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		CompanyType: req.CompanyType,
		TaxID:       req.TaxID,
		IsActive:    true,
	}
	company.StampCreated(userID, s.Now())

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save company", slog.String("code", company.Code))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *masterDataService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *masterDataService) ListCompanies(ctx context.Context, params dto.ListParams) ([]domain.Company, error) {
	limit, offset := normalizeListParams(params)
	return s.companyRepo.ListCompanies(ctx, limit, offset)
}

func (s *masterDataService) SetCompanyGLMapping(ctx context.Context, companyID string, req dto.CompanyGLMappingRequest, userID string) (*domain.Company, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, err
	}
	mapping := req.ToDomain()
	if err := s.ensureAccountsExist(ctx, mapping.AccountIDs()); err != nil {
		return nil, err
	}
	if err := s.companyRepo.UpsertCompanyGLMapping(ctx, companyID, mapping, userID); err != nil {
		s.LogError(ctx, err, "Failed to save company GL mapping", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save company GL mapping: %w", err)
	}
	s.LogInfo(ctx, "Company GL mapping updated", slog.String("company_id", companyID))
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *masterDataService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.Item, error) {
	uom := s.defaultUnitOfMeasure
	if req.UnitOfMeasure != nil && strings.TrimSpace(*req.UnitOfMeasure) != "" {
		uom = strings.TrimSpace(*req.UnitOfMeasure)
	}
	item := domain.Item{
		ItemID:        uuid.NewString(),
		Code:          strings.TrimSpace(req.Code),
		Description:   req.Description,
		ItemType:      req.ItemType,
		UnitOfMeasure: uom,
		IsActive:      true,
	}
	item.StampCreated(userID, s.Now())

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save item", slog.String("code", item.Code))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID))
	return &item, nil
}

func (s *masterDataService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

func (s *masterDataService) ListItems(ctx context.Context, params dto.ListParams) ([]domain.Item, error) {
	limit, offset := normalizeListParams(params)
	return s.itemRepo.ListItems(ctx, limit, offset)
}

func (s *masterDataService) SetItemGLMapping(ctx context.Context, itemID string, req dto.ItemGLMappingRequest, userID string) (*domain.Item, error) {
	if _, err := s.itemRepo.FindItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	mapping := req.ToDomain()
	if err := s.ensureAccountsExist(ctx, mapping.AccountIDs()); err != nil {
		return nil, err
	}
	if err := s.itemRepo.UpsertItemGLMapping(ctx, itemID, mapping, userID); err != nil {
		s.LogError(ctx, err, "Failed to save item GL mapping", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to save item GL mapping: %w", err)
	}
	s.LogInfo(ctx, "Item GL mapping updated", slog.String("item_id", itemID))
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// ensureAccountsExist rejects mappings that reference accounts outside the directory.
func (s *masterDataService) ensureAccountsExist(ctx context.Context, accountIDs []string) error {
	if len(accountIDs) == 0 {
		return nil
	}
	missing, err := s.accountRepo.FindMissingAccountIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to check accounts: %w", err)
	}
	if len(missing) > 0 {
		return apperrors.NewNotFoundError("account", strings.Join(missing, ","))
	}
	return nil
}
