package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
)

// --- Mock MasterDataService ---
type MockMasterDataService struct {
	mock.Mock
}

func (m *MockMasterDataService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockMasterDataService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockMasterDataService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockMasterDataService) ListAccounts(ctx context.Context, params dto.ListParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockMasterDataService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockMasterDataService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockMasterDataService) ListCompanies(ctx context.Context, params dto.ListParams) ([]domain.Company, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockMasterDataService) SetCompanyGLMapping(ctx context.Context, companyID string, req dto.CompanyGLMappingRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockMasterDataService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.Item, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockMasterDataService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockMasterDataService) ListItems(ctx context.Context, params dto.ListParams) ([]domain.Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockMasterDataService) SetItemGLMapping(ctx context.Context, itemID string, req dto.ItemGLMappingRequest, userID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

var _ portssvc.MasterDataSvcFacade = (*MockMasterDataService)(nil)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}
func (m *MockJournalEntryService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) PostJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) ReverseJournalEntry(ctx context.Context, journalEntryID string, actor string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) DeleteJournalEntry(ctx context.Context, journalEntryID string, actor string) error {
	args := m.Called(ctx, journalEntryID, actor)
	return args.Error(0)
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, companyID *string, params dto.ListParams) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	args := m.Called(ctx, invoiceID, userID)
	return args.Error(0)
}
func (m *MockInvoiceService) PostInvoice(ctx context.Context, invoiceID string, actor string) (*domain.Invoice, *domain.JournalEntry, error) {
	args := m.Called(ctx, invoiceID, actor)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Invoice), args.Get(1).(*domain.JournalEntry), args.Error(2)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock EquityService ---
type MockEquityService struct {
	mock.Mock
}

func (m *MockEquityService) CreateEquityAccount(ctx context.Context, req dto.CreateEquityAccountRequest, userID string) (*domain.EquityAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityAccount), args.Error(1)
}
func (m *MockEquityService) ListEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquityAccount), args.Error(1)
}
func (m *MockEquityService) CreateEquityTransaction(ctx context.Context, req dto.CreateEquityTransactionRequest, userID string) (*domain.EquityTransaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityTransaction), args.Error(1)
}
func (m *MockEquityService) PostEquityTransaction(ctx context.Context, transactionID string, actor string) (*domain.EquityTransaction, error) {
	args := m.Called(ctx, transactionID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityTransaction), args.Error(1)
}
func (m *MockEquityService) GetEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityTransaction), args.Error(1)
}
func (m *MockEquityService) ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error) {
	args := m.Called(ctx, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquityTransaction), args.Error(1)
}
func (m *MockEquityService) ListFiscalYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
func (m *MockEquityService) GenerateEquityStatement(ctx context.Context, startYear, endYear int, companyName *string) (*domain.EquityStatement, error) {
	args := m.Called(ctx, startYear, endYear, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityStatement), args.Error(1)
}

var _ portssvc.EquitySvcFacade = (*MockEquityService)(nil)

// --- Mock CashFlowService ---
type MockCashFlowService struct {
	mock.Mock
}

func (m *MockCashFlowService) CreateCashFlowItem(ctx context.Context, req dto.CreateCashFlowItemRequest, userID string) (*domain.CashFlowItem, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowItem), args.Error(1)
}
func (m *MockCashFlowService) ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowItem), args.Error(1)
}
func (m *MockCashFlowService) CreateCashFlowTransaction(ctx context.Context, req dto.CreateCashFlowTransactionRequest, userID string) (*domain.CashFlowTransaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowTransaction), args.Error(1)
}
func (m *MockCashFlowService) PostCashFlowTransaction(ctx context.Context, transactionID string, actor string) (*domain.CashFlowTransaction, error) {
	args := m.Called(ctx, transactionID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowTransaction), args.Error(1)
}
func (m *MockCashFlowService) GetCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowTransaction), args.Error(1)
}
func (m *MockCashFlowService) ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowTransaction), args.Error(1)
}
func (m *MockCashFlowService) ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowTransaction), args.Error(1)
}
func (m *MockCashFlowService) GenerateCashFlowStatement(ctx context.Context, startDate, endDate *time.Time, entity *string) (*domain.CashFlowStatement, error) {
	args := m.Called(ctx, startDate, endDate, entity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowStatement), args.Error(1)
}

var _ portssvc.CashFlowSvcFacade = (*MockCashFlowService)(nil)
