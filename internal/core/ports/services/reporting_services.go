package services

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/finbooks/accounting_backend/internal/dto"
)

// AggregationSvcFacade produces per-category credit/debit totals for a report
// period by delegating the heavy computation to the external batch aggregator.
// It never returns an error to the report flow: unparseable dates and
// downstream aggregation failures both yield an empty result whose Failure
// field records the cause.
type AggregationSvcFacade interface {
	// AggregateForReport parses the request's YYYY-MM-DD date strings and
	// dispatches to the report-kind-specific aggregator.
	AggregateForReport(ctx context.Context, req dto.ReportRequest) domain.AggregationResult

	// AggregateForTax is the tax/VAT variant taking raw time values instead of
	// date strings, under the same failure-tolerant contract.
	AggregateForTax(ctx context.Context, from, to time.Time) domain.AggregationResult
}

// ReportingSvcFacade shapes aggregator output and bracketing snapshots into
// report responses consumed by the request handlers.
type ReportingSvcFacade interface {
	GenerateReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error)
}
