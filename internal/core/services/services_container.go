package services

import (
	portsrepo "github.com/SscSPs/accounts_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accounts_backoffice/internal/core/ports/services"
	"github.com/SscSPs/accounts_backoffice/internal/platform/config"
	"github.com/SscSPs/accounts_backoffice/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	opts := []ServiceOption{WithMetrics(m)}

	return &portssvc.ServiceContainer{
		MasterData: NewMasterDataService(
			repos.AccountRepo,
			repos.CompanyRepo,
			repos.ItemRepo,
			cfg.DefaultUnitOfMeasure,
			opts...,
		),
		JournalEntry: NewJournalEntryService(repos.JournalEntryRepo, opts...),
		// The posting engine only reads companies and items.
		Invoice:  NewInvoiceService(repos.InvoiceRepo, repos.CompanyRepo, repos.ItemRepo, opts...),
		Equity:   NewEquityService(repos.EquityRepo, cfg.StatementCurrencyLabel, opts...),
		CashFlow: NewCashFlowService(repos.CashFlowRepo, cfg.DefaultCurrency, cfg.StatementCurrencyLabel, opts...),
	}
}
