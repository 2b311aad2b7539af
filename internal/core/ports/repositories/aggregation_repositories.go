package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
)

// AggregationRepositoryFacade is the boundary to the external batch aggregator
// (report stored procedures). Input is a timestamp range and a report kind;
// output is ordered rows of per-category credit/debit totals. Zero rows is a
// valid result, not an error.
type AggregationRepositoryFacade interface {
	AggregateCreditDebit(ctx context.Context, kind domain.ReportKind, from, to time.Time) ([]domain.AggregationRow, error)
}

// CategoryRepositoryFacade defines read operations on the transaction category
// registry. Categories are owned and mutated outside this core.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.TransactionCategory, error)
	ListCategories(ctx context.Context) ([]domain.TransactionCategory, error)
}
