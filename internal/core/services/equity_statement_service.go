package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/accounts_backoffice/internal/apperrors"
	"github.com/SscSPs/accounts_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/dto"
	"github.com/SscSPs/accounts_backoffice/internal/utils/accounting"
)

const (
	equityStatementTitle = "Statement of Changes in Equity"
	allCompaniesLabel    = "All Companies"
	totalEquityColumn    = "Total Equity"
	totalColumnOrder     = 999
)

type equityService struct {
	BaseService
	repo          portsrepo.EquityRepositoryFacade
	currencyLabel string
}

// NewEquityService creates the service for equity transactions and the statement of
// changes in equity.
func NewEquityService(repo portsrepo.EquityRepositoryFacade, currencyLabel string, options ...ServiceOption) portssvc.EquitySvcFacade {
	svc := &equityService{repo: repo, currencyLabel: currencyLabel}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.EquitySvcFacade = (*equityService)(nil)

func (s *equityService) CreateEquityAccount(ctx context.Context, req dto.CreateEquityAccountRequest, userID string) (*domain.EquityAccount, error) {
	account := domain.EquityAccount{
		EquityAccountID: uuid.NewString(),
		Code:            strings.TrimSpace(req.Code),
		Name:            strings.TrimSpace(req.Name),
		AccountType:     strings.ToUpper(strings.TrimSpace(req.AccountType)),
		DisplayOrder:    req.DisplayOrder,
		IsActive:        true,
		Description:     req.Description,
	}
	account.StampCreated(userID, s.Now())

	if err := s.repo.SaveEquityAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save equity account", slog.String("code", account.Code))
		return nil, fmt.Errorf("failed to save equity account: %w", err)
	}
	s.LogInfo(ctx, "Equity account created", slog.String("equity_account_id", account.EquityAccountID))
	return &account, nil
}

func (s *equityService) ListEquityAccounts(ctx context.Context) ([]domain.EquityAccount, error) {
	return s.repo.ListActiveEquityAccounts(ctx)
}

func (s *equityService) CreateEquityTransaction(ctx context.Context, req dto.CreateEquityTransactionRequest, userID string) (*domain.EquityTransaction, error) {
	txType := domain.EquityTransactionType(strings.ToUpper(string(req.TransactionType)))
	if !txType.IsValid() {
		return nil, apperrors.NewValidationError("unknown equity transaction type %q", req.TransactionType)
	}
	if _, err := s.repo.FindEquityAccountByID(ctx, req.EquityAccountID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.TransactionNumber)
	exists, err := s.repo.ExistsByTransactionNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: equity transaction number %s", apperrors.ErrDuplicate, number)
	}

	txn := domain.EquityTransaction{
		TransactionID:     uuid.NewString(),
		TransactionNumber: number,
		TransactionDate:   req.TransactionDate,
		EquityAccountID:   req.EquityAccountID,
		TransactionType:   txType,
		Amount:            accounting.RoundQuantity(req.Amount),
		FiscalYear:        req.FiscalYear,
		FiscalPeriod:      req.FiscalPeriod,
		CompanyName:       req.CompanyName,
		ReferenceNumber:   req.ReferenceNumber,
		Notes:             req.Notes,
	}
	txn.StampCreated(userID, s.Now())

	if err := s.repo.SaveEquityTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save equity transaction", slog.String("transaction_number", number))
		return nil, fmt.Errorf("failed to save equity transaction: %w", err)
	}
	s.LogInfo(ctx, "Equity transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("fiscal_year", txn.FiscalYear))
	return &txn, nil
}

func (s *equityService) PostEquityTransaction(ctx context.Context, transactionID string, actor string) (*domain.EquityTransaction, error) {
	txn, err := s.repo.FindEquityTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsPosted {
		return nil, fmt.Errorf("%w: equity transaction %s", apperrors.ErrAlreadyPosted, txn.TransactionNumber)
	}
	now := s.Now()
	if err := s.repo.MarkEquityTransactionPosted(ctx, transactionID, actor, now); err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyPosted) {
			s.LogError(ctx, err, "Failed to post equity transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	txn.IsPosted = true
	txn.PostedDate = &now
	txn.StampUpdated(actor, now)
	s.LogInfo(ctx, "Equity transaction posted", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *equityService) GetEquityTransactionByID(ctx context.Context, transactionID string) (*domain.EquityTransaction, error) {
	return s.repo.FindEquityTransactionByID(ctx, transactionID)
}

func (s *equityService) ListEquityTransactionsByYear(ctx context.Context, fiscalYear int) ([]domain.EquityTransaction, error) {
	return s.repo.ListEquityTransactionsByYear(ctx, fiscalYear)
}

func (s *equityService) ListFiscalYears(ctx context.Context) ([]int, error) {
	return s.repo.ListFiscalYears(ctx)
}

// GenerateEquityStatement recomputes the statement from the transaction history. Amounts
// are fetched with a single grouped query and folded in memory.
func (s *equityService) GenerateEquityStatement(ctx context.Context, startYear, endYear int, companyName *string) (*domain.EquityStatement, error) {
	if startYear > endYear {
		return nil, apperrors.NewValidationError("startYear %d is after endYear %d", startYear, endYear)
	}
	started := s.Now()

	var company *string
	if companyName != nil && strings.TrimSpace(*companyName) != "" {
		trimmed := strings.TrimSpace(*companyName)
		company = &trimmed
	}

	accounts, err := s.repo.ListActiveEquityAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load equity accounts")
		return nil, fmt.Errorf("failed to load equity accounts: %w", err)
	}
	aggregates, err := s.repo.AggregateEquityAmounts(ctx, endYear, company)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate equity amounts")
		return nil, fmt.Errorf("failed to aggregate equity amounts: %w", err)
	}

	statement := &domain.EquityStatement{
		Title:       equityStatementTitle,
		CompanyName: allCompaniesLabel,
		Currency:    s.currencyLabel,
		Period:      equityPeriod(startYear, endYear),
		StartYear:   startYear,
		EndYear:     endYear,
		Columns:     equityColumns(accounts),
	}
	if company != nil {
		statement.CompanyName = *company
	}

	ledger := newEquityLedger(accounts, aggregates)
	for year := startYear; year <= endYear; year++ {
		statement.Rows = append(statement.Rows, ledger.rowsForYear(year)...)
	}

	s.Metrics.ObserveStatement("equity", s.Now().Sub(started))
	s.LogInfo(ctx, "Equity statement generated",
		slog.Int("start_year", startYear),
		slog.Int("end_year", endYear),
		slog.Int("rows", len(statement.Rows)))
	return statement, nil
}

func equityPeriod(startYear, endYear int) string {
	switch {
	case startYear > 0 && endYear > 0:
		return fmt.Sprintf("For the Period Ended 31 December, %d and %d", endYear, startYear)
	case endYear > 0:
		return fmt.Sprintf("For the Period Ended 31 December, %d", endYear)
	default:
		return "For the Period Ended 31 December"
	}
}

func equityColumns(accounts []domain.EquityAccount) []domain.EquityStatementColumn {
	cols := make([]domain.EquityStatementColumn, 0, len(accounts)+1)
	for _, a := range accounts {
		cols = append(cols, domain.EquityStatementColumn{
			AccountType:  a.AccountType,
			ColumnName:   a.Name,
			DisplayOrder: a.DisplayOrder,
		})
	}
	return append(cols, domain.EquityStatementColumn{
		AccountType:  domain.TotalColumnKey,
		ColumnName:   totalEquityColumn,
		DisplayOrder: totalColumnOrder,
	})
}

type equityCell struct {
	accountID string
	txType    domain.EquityTransactionType
	year      int
}

// equityLedger holds the grouped amounts for one statement request.
type equityLedger struct {
	accounts []domain.EquityAccount
	cells    map[equityCell]decimal.Decimal
	// byYear sums every type per account and year, for opening and closing balances.
	byYear map[string]map[int]decimal.Decimal
}

func newEquityLedger(accounts []domain.EquityAccount, aggregates []domain.EquityAmountAggregate) *equityLedger {
	l := &equityLedger{
		accounts: accounts,
		cells:    make(map[equityCell]decimal.Decimal, len(aggregates)),
		byYear:   make(map[string]map[int]decimal.Decimal, len(accounts)),
	}
	for _, agg := range aggregates {
		key := equityCell{accountID: agg.EquityAccountID, txType: agg.TransactionType, year: agg.FiscalYear}
		l.cells[key] = l.cells[key].Add(agg.Amount)

		years, ok := l.byYear[agg.EquityAccountID]
		if !ok {
			years = make(map[int]decimal.Decimal)
			l.byYear[agg.EquityAccountID] = years
		}
		years[agg.FiscalYear] = years[agg.FiscalYear].Add(agg.Amount)
	}
	return l
}

// balance sums an account's amounts for every year satisfying include.
func (l *equityLedger) balance(accountID string, include func(year int) bool) decimal.Decimal {
	total := decimal.Zero
	for year, amount := range l.byYear[accountID] {
		if include(year) {
			total = total.Add(amount)
		}
	}
	return total
}

func (l *equityLedger) movement(accountID string, year int, types ...domain.EquityTransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range types {
		total = total.Add(l.cells[equityCell{accountID: accountID, txType: t, year: year}])
	}
	return total
}

// fill sets one value per column plus TOTAL. Accounts sharing a column key accumulate.
func (l *equityLedger) fill(row *domain.EquityStatementRow, value func(accountID string) decimal.Decimal) {
	row.Values = make(map[string]decimal.Decimal, len(l.accounts)+1)
	total := decimal.Zero
	for _, a := range l.accounts {
		v := value(a.EquityAccountID)
		row.Values[a.AccountType] = row.Values[a.AccountType].Add(v)
		total = total.Add(v)
	}
	row.Values[domain.TotalColumnKey] = total
}

func (l *equityLedger) transactionRow(id, description string, year, indent int, txType domain.EquityTransactionType) domain.EquityStatementRow {
	row := domain.EquityStatementRow{
		RowID:          fmt.Sprintf("%s_%d", id, year),
		RowDescription: description,
		RowType:        domain.RowTransaction,
		Category:       string(txType),
		IndentLevel:    indent,
	}
	l.fill(&row, func(accountID string) decimal.Decimal {
		return l.movement(accountID, year, txType)
	})
	return row
}

func (l *equityLedger) totalRow(id, description string, year, indent int, types ...domain.EquityTransactionType) domain.EquityStatementRow {
	row := domain.EquityStatementRow{
		RowID:          fmt.Sprintf("%s_%d", id, year),
		RowDescription: description,
		RowType:        domain.RowTotal,
		IsBold:         true,
		IsTotal:        true,
		IndentLevel:    indent,
	}
	l.fill(&row, func(accountID string) decimal.Decimal {
		return l.movement(accountID, year, types...)
	})
	return row
}

func headerRow(id, description string, year int, bold, italic bool, indent int) domain.EquityStatementRow {
	return domain.EquityStatementRow{
		RowID:          fmt.Sprintf("%s_%d", id, year),
		RowDescription: description,
		RowType:        domain.RowSectionHeader,
		IsBold:         bold,
		IsItalic:       italic,
		IndentLevel:    indent,
		Values:         map[string]decimal.Decimal{},
	}
}

// rowsForYear emits the fixed row sequence for one fiscal year.
func (l *equityLedger) rowsForYear(year int) []domain.EquityStatementRow {
	opening := domain.EquityStatementRow{
		RowID:          fmt.Sprintf("opening_%d", year),
		RowDescription: fmt.Sprintf("Balance at 1 January %d", year),
		RowType:        domain.RowOpening,
		IsBold:         true,
	}
	l.fill(&opening, func(accountID string) decimal.Decimal {
		return l.balance(accountID, func(y int) bool { return y < year })
	})

	closing := domain.EquityStatementRow{
		RowID:          fmt.Sprintf("closing_%d", year),
		RowDescription: fmt.Sprintf("Balance at 31 December %d", year),
		RowType:        domain.RowClosing,
		IsBold:         true,
	}
	l.fill(&closing, func(accountID string) decimal.Decimal {
		return l.balance(accountID, func(y int) bool { return y <= year })
	})

	return []domain.EquityStatementRow{
		opening,
		headerRow("profit_header", "Comprehensive Profit or Loss", year, true, false, 0),
		l.transactionRow("profit_year", "Profit for the Year", year, 0, domain.EquityProfitForYear),
		headerRow("oci_header", "Other Comprehensive Profit or Loss", year, false, true, 1),
		l.transactionRow("oci_benefit", "Remeasurements of Defined Benefit Liability", year, 1, domain.EquityOCIDefinedBenefit),
		l.transactionRow("oci_fair_value", "Revaluation of Non-Current Assets Held at Fair Value Model", year, 1, domain.EquityOCIFairValue),
		l.totalRow("total_oci", "Total Other Comprehensive Profit or Loss", year, 1,
			domain.EquityOCIDefinedBenefit, domain.EquityOCIFairValue),
		l.totalRow("total_comprehensive", "Total Comprehensive Profit or Loss", year, 0,
			domain.EquityProfitForYear, domain.EquityOCIDefinedBenefit, domain.EquityOCIFairValue),
		l.transactionRow("issue_shares", "Issue of Ordinary Shares", year, 0, domain.EquityIssueOrdinaryShares),
		l.transactionRow("treasury", "Sale or Purchase of Treasury Shares", year, 0, domain.EquityTreasuryShares),
		l.transactionRow("ownership", "Changes in Ownership Interests", year, 0, domain.EquityOwnershipChanges),
		l.transactionRow("dividends", "Dividends", year, 0, domain.EquityDividends),
		l.transactionRow("contributions", "Contributions from Shareholders", year, 0, domain.EquityShareholderContributions),
		l.transactionRow("other", "Other", year, 0, domain.EquityOther),
		closing,
	}
}
