package pgsql

import (
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotRepo:    newPgxSnapshotRepository(dbPool),
		ReceiptRepo:     newPgxReceiptRepository(dbPool),
		AllocationRepo:  newPgxAllocationRepository(dbPool),
		InvoiceRepo:     newPgxInvoiceRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		AggregationRepo: newPgxAggregationRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
	}
}
