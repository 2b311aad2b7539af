package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
	"github.com/finbooks/accounting_backend/internal/dto"
)

// reportingService merges per-category aggregates with bracketing closing
// balance snapshots into report responses. A failed aggregation degrades the
// report to zero figures instead of failing it.
type reportingService struct {
	BaseService
	aggregationSvc portssvc.AggregationSvcFacade
	balanceSvc     portssvc.BalanceSvcFacade
	categoryRepo   portsrepo.CategoryRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	aggregationSvc portssvc.AggregationSvcFacade,
	balanceSvc portssvc.BalanceSvcFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		aggregationSvc: aggregationSvc,
		balanceSvc:     balanceSvc,
		categoryRepo:   categoryRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GenerateReport produces the per-category rows of the requested report.
func (s *reportingService) GenerateReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown report kind %q", apperrors.ErrValidation, req.Kind)
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction categories: %w", err)
	}

	result := s.aggregationSvc.AggregateForReport(ctx, req)
	if result.Failure != nil {
		s.LogError(ctx, result.Failure, "Report aggregation degraded to empty totals",
			slog.String("report_kind", string(req.Kind)))
	}

	// Bracketing snapshots are only meaningful when the dates parse; a
	// degraded report keeps zero opening/closing balances.
	var from, to time.Time
	var datesValid bool
	if f, err := time.Parse(reportDateLayout, req.StartDate); err == nil {
		if t, err := time.Parse(reportDateLayout, req.EndDate); err == nil {
			from, to = f, t
			datesValid = true
		}
	}

	rows := make([]dto.CategoryReportRow, 0, len(categories))
	for _, category := range categories {
		row := dto.CategoryReportRow{
			CategoryID:     category.CategoryID,
			CategoryName:   category.Name,
			CategoryCode:   category.Code,
			OpeningBalance: decimal.Zero,
			ClosingBalance: decimal.Zero,
			Credit:         decimal.Zero,
			Debit:          decimal.Zero,
		}

		if agg, ok := result.Totals[category.CategoryID]; ok {
			row.Credit = agg.Credit
			row.Debit = agg.Debit
		}

		if datesValid {
			opening, err := s.balanceSvc.LatestClosingBalanceBefore(ctx, category.CategoryID, from)
			if err != nil {
				return nil, err
			}
			if opening != nil {
				row.OpeningBalance = opening.Balance
			}
			closing, err := s.balanceSvc.LatestClosingBalanceBefore(ctx, category.CategoryID, to)
			if err != nil {
				return nil, err
			}
			if closing != nil {
				row.ClosingBalance = closing.Balance
			}
		}

		rows = append(rows, row)
	}

	s.LogInfo(ctx, "Report generated",
		slog.String("report_kind", string(req.Kind)),
		slog.Int("row_count", len(rows)),
		slog.Bool("degraded", result.Failure != nil))
	return &dto.ReportResponse{
		Kind:      req.Kind,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      rows,
		Degraded:  result.Failure != nil,
	}, nil
}
