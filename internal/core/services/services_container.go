package services

import (
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Balance service first since posting and reporting depend on it
	container.Balance = NewBalanceService(repos.SnapshotRepo)

	container.Aggregation = NewAggregationService(repos.AggregationRepo)
	container.Posting = NewPostingService(repos.JournalRepo, container.Balance)
	container.Reporting = NewReportingService(container.Aggregation, container.Balance, repos.CategoryRepo)
	container.Reconciliation = NewReconciliationService(
		repos.ReceiptRepo,
		repos.AllocationRepo,
		repos.InvoiceRepo,
		repos.JournalRepo,
		container.Posting,
	)

	return container
}
