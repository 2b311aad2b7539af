package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Report-kind specific stored procedures. Each takes (from, to) and returns
// ordered rows of (category_id, credit_total, debit_total); the tax variant
// additionally returns (label, type_code). The procedures are the external
// batch aggregator; this repository only shapes their output.
var aggregationProcedures = map[domain.ReportKind]string{
	domain.ReportProfitAndLoss: "aggregate_profit_and_loss",
	domain.ReportBalanceSheet:  "aggregate_balance_sheet",
	domain.ReportTrialBalance:  "aggregate_trial_balance",
	domain.ReportTax:           "aggregate_tax",
}

// PgxAggregationRepository invokes the report stored procedures.
type PgxAggregationRepository struct {
	BaseRepository
}

// newPgxAggregationRepository creates a new repository for report aggregation data.
func newPgxAggregationRepository(pool *pgxpool.Pool) portsrepo.AggregationRepositoryFacade {
	return &PgxAggregationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAggregationRepository implements portsrepo.AggregationRepositoryFacade
var _ portsrepo.AggregationRepositoryFacade = (*PgxAggregationRepository)(nil)

// AggregateCreditDebit runs the report-kind-specific stored procedure for the
// period and returns its rows. Zero rows is a valid result.
func (r *PgxAggregationRepository) AggregateCreditDebit(ctx context.Context, kind domain.ReportKind, from, to time.Time) ([]domain.AggregationRow, error) {
	procedure, ok := aggregationProcedures[kind]
	if !ok {
		return nil, fmt.Errorf("no aggregation procedure for report kind %q", kind)
	}

	query := fmt.Sprintf("SELECT * FROM %s($1, $2);", procedure)
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to run aggregation procedure %s: %w", procedure, err)
	}
	defer rows.Close()

	result := []domain.AggregationRow{}
	for rows.Next() {
		var row domain.AggregationRow
		if kind == domain.ReportTax {
			if err := rows.Scan(&row.CategoryID, &row.Credit, &row.Debit, &row.Label, &row.TypeCode); err != nil {
				return nil, fmt.Errorf("failed to scan tax aggregation row: %w", err)
			}
		} else {
			if err := rows.Scan(&row.CategoryID, &row.Credit, &row.Debit); err != nil {
				return nil, fmt.Errorf("failed to scan aggregation row: %w", err)
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating aggregation rows: %w", err)
	}
	return result, nil
}
