package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/finbooks/accounting_backend/internal/dto"
)

// reportDateLayout is the wire format of report request dates.
const reportDateLayout = "2006-01-02"

// aggregationService computes period credit/debit totals per transaction
// category by delegating to the external batch aggregator and shaping its rows
// into an in-memory map. It must never abort report generation: unparseable
// dates and downstream aggregation failures both collapse into an empty result
// with the cause recorded on it.
type aggregationService struct {
	BaseService
	aggregationRepo portsrepo.AggregationRepositoryFacade
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(aggregationRepo portsrepo.AggregationRepositoryFacade) portssvc.AggregationSvcFacade {
	return &aggregationService{aggregationRepo: aggregationRepo}
}

// Ensure aggregationService implements the portssvc.AggregationSvcFacade interface
var _ portssvc.AggregationSvcFacade = (*aggregationService)(nil)

// AggregateForReport parses the request's date strings and dispatches to the
// report-kind-specific aggregator.
func (s *aggregationService) AggregateForReport(ctx context.Context, req dto.ReportRequest) domain.AggregationResult {
	from, err := time.Parse(reportDateLayout, req.StartDate)
	if err != nil {
		s.LogDebug(ctx, "Unparseable report start date, returning empty aggregation",
			slog.String("start_date", req.StartDate))
		return domain.EmptyAggregationResult(fmt.Errorf("unparseable start date %q: %w", req.StartDate, err))
	}
	to, err := time.Parse(reportDateLayout, req.EndDate)
	if err != nil {
		s.LogDebug(ctx, "Unparseable report end date, returning empty aggregation",
			slog.String("end_date", req.EndDate))
		return domain.EmptyAggregationResult(fmt.Errorf("unparseable end date %q: %w", req.EndDate, err))
	}

	return s.aggregate(ctx, req.Kind, from, to)
}

// AggregateForTax is the tax/VAT variant taking raw time values instead of
// date strings, under the same failure-tolerant contract.
func (s *aggregationService) AggregateForTax(ctx context.Context, from, to time.Time) domain.AggregationResult {
	return s.aggregate(ctx, domain.ReportTax, from, to)
}

func (s *aggregationService) aggregate(ctx context.Context, kind domain.ReportKind, from, to time.Time) domain.AggregationResult {
	rows, err := s.aggregationRepo.AggregateCreditDebit(ctx, kind, from, to)
	if err != nil {
		// A single category's computation failing must not abort report
		// generation; the report shows blank figures instead.
		s.LogError(ctx, err, "Aggregation failed, returning empty result",
			slog.String("report_kind", string(kind)),
			slog.Time("from", from),
			slog.Time("to", to))
		return domain.EmptyAggregationResult(err)
	}

	totals := make(map[string]domain.CreditDebitAggregate, len(rows))
	for _, row := range rows {
		totals[row.CategoryID] = domain.CreditDebitAggregate{
			Credit: row.Credit,
			Debit:  row.Debit,
		}
	}

	s.LogDebug(ctx, "Aggregation completed",
		slog.String("report_kind", string(kind)),
		slog.Int("category_count", len(totals)))
	return domain.AggregationResult{Totals: totals}
}
