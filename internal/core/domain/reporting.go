package domain

import (
	"github.com/shopspring/decimal"
)

// ReportKind identifies one of the financial reports the balance aggregator
// can compute totals for.
type ReportKind string

const (
	ReportProfitAndLoss ReportKind = "PROFIT_AND_LOSS"
	ReportBalanceSheet  ReportKind = "BALANCE_SHEET"
	ReportTrialBalance  ReportKind = "TRIAL_BALANCE"
	ReportTax           ReportKind = "TAX"
)

// Valid reports whether k is one of the known report kinds.
func (k ReportKind) Valid() bool {
	switch k {
	case ReportProfitAndLoss, ReportBalanceSheet, ReportTrialBalance, ReportTax:
		return true
	}
	return false
}

// CreditDebitAggregate holds the period credit and debit totals of one
// transaction category.
type CreditDebitAggregate struct {
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

// AggregationRow is one raw row returned by the external batch aggregator:
// per-category totals for the requested period. Label and TypeCode are only
// populated by the tax variant.
type AggregationRow struct {
	CategoryID string
	Credit     decimal.Decimal
	Debit      decimal.Decimal
	Label      string
	TypeCode   string
}

// AggregationResult is the outcome of one aggregation request. Totals maps
// category id to its period aggregate. Failure, when non-nil, records why the
// totals are empty (unparseable dates or a downstream aggregator error) so
// callers can tell "no data" from "computation failed"; report generation
// proceeds with empty totals either way.
type AggregationResult struct {
	Totals  map[string]CreditDebitAggregate
	Failure error
}

// EmptyAggregationResult returns a result with no totals and the given cause.
func EmptyAggregationResult(cause error) AggregationResult {
	return AggregationResult{Totals: map[string]CreditDebitAggregate{}, Failure: cause}
}
