package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main and pick the facades they need.
type ServiceContainer struct {
	MasterData   MasterDataSvcFacade
	JournalEntry JournalEntrySvcFacade
	Invoice      InvoiceSvcFacade
	Equity       EquitySvcFacade
	CashFlow     CashFlowSvcFacade
}
