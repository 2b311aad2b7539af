package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SnapshotRepo    SnapshotRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	AllocationRepo  AllocationRepositoryFacade
	InvoiceRepo     InvoiceRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	AggregationRepo AggregationRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
}
