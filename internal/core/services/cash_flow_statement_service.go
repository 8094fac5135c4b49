package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

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
	cashFlowStatementTitle = "CASH FLOW STATEMENT"
	allEntitiesLabel       = "All entities"
	periodDateLayout       = "2006-01-02"
)

type cashFlowService struct {
	BaseService
	repo            portsrepo.CashFlowRepositoryFacade
	defaultCurrency string
	currencyLabel   string
}

// NewCashFlowService creates the service for cash-flow transactions and statements.
func NewCashFlowService(repo portsrepo.CashFlowRepositoryFacade, defaultCurrency, currencyLabel string, options ...ServiceOption) portssvc.CashFlowSvcFacade {
	svc := &cashFlowService{
		repo:            repo,
		defaultCurrency: defaultCurrency,
		currencyLabel:   currencyLabel,
	}
	svc.applyOptions(options)
	return svc
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

func (s *cashFlowService) CreateCashFlowItem(ctx context.Context, req dto.CreateCashFlowItemRequest, userID string) (*domain.CashFlowItem, error) {
	item := domain.CashFlowItem{
		CashFlowItemID: uuid.NewString(),
		Code:           strings.TrimSpace(req.Code),
		Description:    req.Description,
		FlowType:       req.FlowType,
		Category:       req.Category,
		DisplayOrder:   req.DisplayOrder,
		IsActive:       true,
	}
	item.StampCreated(userID, s.Now())

	if err := s.repo.SaveCashFlowItem(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save cash flow item", slog.String("code", item.Code))
		return nil, fmt.Errorf("failed to save cash flow item: %w", err)
	}
	s.LogInfo(ctx, "Cash flow item created", slog.String("cash_flow_item_id", item.CashFlowItemID))
	return &item, nil
}

func (s *cashFlowService) ListCashFlowItems(ctx context.Context) ([]domain.CashFlowItem, error) {
	return s.repo.ListCashFlowItems(ctx)
}

func (s *cashFlowService) CreateCashFlowTransaction(ctx context.Context, req dto.CreateCashFlowTransactionRequest, userID string) (*domain.CashFlowTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}
	item, err := s.repo.FindCashFlowItemByID(ctx, req.CashFlowItemID)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.TransactionNumber)
	exists, err := s.repo.ExistsByCashFlowNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction number: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: cash flow transaction number %s", apperrors.ErrDuplicate, number)
	}

	txn := domain.CashFlowTransaction{
		TransactionID:     uuid.NewString(),
		TransactionNumber: number,
		TransactionDate:   req.TransactionDate,
		CashFlowItemID:    item.CashFlowItemID,
		FlowType:          item.FlowType,
		Category:          item.Category,
		Amount:            accounting.RoundMoney(req.Amount),
		Entity:            req.Entity,
		Currency:          s.defaultCurrency,
		ReferenceNumber:   req.ReferenceNumber,
		Notes:             req.Notes,
	}
	if req.FlowType != nil {
		txn.FlowType = *req.FlowType
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Currency != nil && *req.Currency != "" {
		txn.Currency = strings.ToUpper(*req.Currency)
	}
	txn.StampCreated(userID, s.Now())

	if err := s.repo.SaveCashFlowTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save cash flow transaction", slog.String("transaction_number", number))
		return nil, fmt.Errorf("failed to save cash flow transaction: %w", err)
	}
	s.LogInfo(ctx, "Cash flow transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("flow_type", string(txn.FlowType)))
	return &txn, nil
}

func (s *cashFlowService) PostCashFlowTransaction(ctx context.Context, transactionID string, actor string) (*domain.CashFlowTransaction, error) {
	txn, err := s.repo.FindCashFlowTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsPosted {
		return nil, fmt.Errorf("%w: cash flow transaction %s", apperrors.ErrAlreadyPosted, txn.TransactionNumber)
	}
	now := s.Now()
	if err := s.repo.MarkCashFlowTransactionPosted(ctx, transactionID, actor, now); err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyPosted) {
			s.LogError(ctx, err, "Failed to post cash flow transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	txn.IsPosted = true
	txn.PostedDate = &now
	txn.StampUpdated(actor, now)
	s.LogInfo(ctx, "Cash flow transaction posted", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *cashFlowService) GetCashFlowTransactionByID(ctx context.Context, transactionID string) (*domain.CashFlowTransaction, error) {
	return s.repo.FindCashFlowTransactionByID(ctx, transactionID)
}

func (s *cashFlowService) ListCashFlowTransactions(ctx context.Context, filter domain.CashFlowFilter) ([]domain.CashFlowTransaction, error) {
	if filter.HasDateRange() && filter.StartDate.After(*filter.EndDate) {
		return nil, apperrors.NewValidationError("startDate is after endDate")
	}
	return s.repo.ListCashFlowTransactions(ctx, filter)
}

func (s *cashFlowService) ListUnpostedCashFlowTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error) {
	return s.repo.ListUnpostedCashFlowTransactions(ctx)
}

// GenerateCashFlowStatement groups every transaction in range by item, posted or not.
// The date range applies only when both bounds are given.
func (s *cashFlowService) GenerateCashFlowStatement(ctx context.Context, startDate, endDate *time.Time, entity *string) (*domain.CashFlowStatement, error) {
	started := s.Now()
	filter := domain.CashFlowFilter{StartDate: startDate, EndDate: endDate}
	if entity != nil && strings.TrimSpace(*entity) != "" {
		trimmed := strings.TrimSpace(*entity)
		filter.Entity = &trimmed
	}
	if filter.HasDateRange() && startDate.After(*endDate) {
		return nil, apperrors.NewValidationError("startDate is after endDate")
	}

	txns, err := s.repo.ListCashFlowTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash flow transactions")
		return nil, fmt.Errorf("failed to load cash flow transactions: %w", err)
	}

	statement := &domain.CashFlowStatement{
		Title:          cashFlowStatementTitle,
		Entity:         allEntitiesLabel,
		Currency:       s.currencyLabel,
		StartDate:      startDate,
		EndDate:        endDate,
		Period:         cashFlowPeriod(filter),
		OpeningBalance: decimal.Zero,
	}
	if filter.Entity != nil {
		statement.Entity = *filter.Entity
	}

	for _, line := range groupCashFlowLines(txns) {
		switch line.FlowType {
		case domain.Inflow:
			statement.InflowItems = append(statement.InflowItems, line)
		case domain.Outflow:
			statement.OutflowItems = append(statement.OutflowItems, line)
		}
	}
	sortCashFlowLines(statement.InflowItems)
	sortCashFlowLines(statement.OutflowItems)
	statement.CalculateTotals()

	s.Metrics.ObserveStatement("cash_flow", s.Now().Sub(started))
	s.LogInfo(ctx, "Cash flow statement generated",
		slog.Int("transactions", len(txns)),
		slog.String("net_flow", statement.NetFlow.StringFixed(2)))
	return statement, nil
}

func cashFlowPeriod(filter domain.CashFlowFilter) string {
	if !filter.HasDateRange() {
		return "Data for all time"
	}
	return fmt.Sprintf("Data from %s to %s",
		filter.StartDate.Format(periodDateLayout), filter.EndDate.Format(periodDateLayout))
}

type cashFlowLineKey struct {
	itemID   string
	flowType domain.FlowType
}

// groupCashFlowLines sums amounts per (item, flow type) pair. Category comes from the
// pair's first transaction.
func groupCashFlowLines(txns []domain.CashFlowTransaction) []domain.CashFlowLineItem {
	index := make(map[cashFlowLineKey]int, len(txns))
	lines := make([]domain.CashFlowLineItem, 0)
	for _, t := range txns {
		key := cashFlowLineKey{itemID: t.CashFlowItemID, flowType: t.FlowType}
		if i, ok := index[key]; ok {
			lines[i].Amount = lines[i].Amount.Add(t.Amount)
			continue
		}
		line := domain.CashFlowLineItem{
			FlowType: t.FlowType,
			Category: t.Category,
			Amount:   t.Amount,
		}
		if t.Item != nil {
			line.ItemCode = t.Item.Code
			line.ItemDescription = t.Item.Description
			line.DisplayOrder = t.Item.DisplayOrder
		}
		index[key] = len(lines)
		lines = append(lines, line)
	}
	return lines
}

// sortCashFlowLines orders by display order with missing orders last, then by code.
func sortCashFlowLines(lines []domain.CashFlowLineItem) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].DisplayOrder, lines[j].DisplayOrder
		switch {
		case a == nil && b == nil:
			return lines[i].ItemCode < lines[j].ItemCode
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return lines[i].ItemCode < lines[j].ItemCode
		}
	})
}
