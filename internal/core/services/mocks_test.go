package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
)

// --- Master data ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindMissingAccountIDs(ctx context.Context, accountIDs []string) ([]string, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) UpsertCompanyGLMapping(ctx context.Context, companyID string, mapping domain.CompanyGLMapping, userID string) error {
	return m.Called(ctx, companyID, mapping, userID).Error(0)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) UpsertItemGLMapping(ctx context.Context, itemID string, mapping domain.ItemGLMapping, userID string) error {
	return m.Called(ctx, itemID, mapping, userID).Error(0)
}

// --- Journal entries ---

type MockJournalEntryRepository struct {
	mock.Mock
}

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ExistsByEntryNumber(ctx context.Context, entryNumber string) (bool, error) {
	args := m.Called(ctx, entryNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalEntryRepository) ListJournalEntries(ctx context.Context, status *domain.JournalEntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalEntryRepository) UpdateJournalEntryStatus(ctx context.Context, entry domain.JournalEntry, from domain.JournalEntryStatus) error {
	return m.Called(ctx, entry, from).Error(0)
}

func (m *MockJournalEntryRepository) DeleteDraftJournalEntry(ctx context.Context, journalEntryID string) error {
	return m.Called(ctx, journalEntryID).Error(0)
}

func (m *MockJournalEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Invoices ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, companyID *string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) ReplaceDraftInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) DeleteDraftInvoice(ctx context.Context, invoiceID string) error {
	return m.Called(ctx, invoiceID).Error(0)
}

func (m *MockInvoiceRepository) SaveInvoicePosting(ctx context.Context, invoiceID string, entry domain.JournalEntry, postedBy string, postedAt time.Time) error {
	return m.Called(ctx, invoiceID, entry, postedBy, postedAt).Error(0)
}

// --- Equity ---

type MockEquityRepository struct {
	mock.Mock
}

func (m *MockEquityRepository) SaveEquityAccount(ctx context.Context, account domain.EquityAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockEquityRepository) FindEquityAccountByID(ctx context.Context, equityAccountID string) (*domain.EquityAccount, error) {
	args := m.Called(ctx, equityAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityAccount), args.Error(1)
}

func (m *MockEquityRepository) ListActiveEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquityAccount), args.Error(1)
}

func (m *MockEquityRepository) FindEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquityTransaction), args.Error(1)
}

func (m *MockEquityRepository) ExistsByTransactionNumber(ctx context.Context, transactionNumber string) (bool, error) {
	args := m.Called(ctx, transactionNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockEquityRepository) ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error) {
	args := m.Called(ctx, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquityTransaction), args.Error(1)
}

func (m *MockEquityRepository) ListFiscalYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockEquityRepository) AggregateEquityAmounts(ctx context.Context, throughYear int, companyName *string) ([]domain.EquityAmountAggregate, error) {
	args := m.Called(ctx, throughYear, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquityAmountAggregate), args.Error(1)
}

func (m *MockEquityRepository) SaveEquityTransaction(ctx context.Context, txn domain.EquityTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockEquityRepository) MarkEquityTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error {
	return m.Called(ctx, transactionID, userID, postedAt).Error(0)
}

// --- Cash flow ---

type MockCashFlowRepository struct {
	mock.Mock
}

func (m *MockCashFlowRepository) SaveCashFlowItem(ctx context.Context, item domain.CashFlowItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCashFlowRepository) FindCashFlowItemByID(ctx context.Context, itemID string) (*domain.CashFlowItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowItem), args.Error(1)
}

func (m *MockCashFlowRepository) ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowItem), args.Error(1)
}

func (m *MockCashFlowRepository) FindCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowTransaction), args.Error(1)
}

func (m *MockCashFlowRepository) ExistsByCashFlowNumber(ctx context.Context, transactionNumber string) (bool, error) {
	args := m.Called(ctx, transactionNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCashFlowRepository) ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowTransaction), args.Error(1)
}

func (m *MockCashFlowRepository) ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowTransaction), args.Error(1)
}

func (m *MockCashFlowRepository) SaveCashFlowTransaction(ctx context.Context, txn domain.CashFlowTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockCashFlowRepository) MarkCashFlowTransactionPosted(ctx context.Context, transactionID, userID string, postedAt time.Time) error {
	return m.Called(ctx, transactionID, userID, postedAt).Error(0)
}
