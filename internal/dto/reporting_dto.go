package dto

import (
	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportRequest describes one report-generation request. StartDate and EndDate
// are YYYY-MM-DD strings; unparseable values are tolerated and yield an empty
// aggregation rather than an error.
type ReportRequest struct {
	Kind      domain.ReportKind `json:"kind"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
}

// CategoryReportRow is one per-category row of a generated report.
type CategoryReportRow struct {
	CategoryID     string          `json:"categoryID"`
	CategoryName   string          `json:"categoryName"`
	CategoryCode   string          `json:"categoryCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Credit         decimal.Decimal `json:"credit"`
	Debit          decimal.Decimal `json:"debit"`
}

// ReportResponse is the shaped output of one report request.
type ReportResponse struct {
	Kind      domain.ReportKind   `json:"kind"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Rows      []CategoryReportRow `json:"rows"`
	// Degraded is set when aggregation failed and the rows carry zero totals.
	Degraded bool `json:"degraded,omitempty"`
}
