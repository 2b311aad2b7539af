package services

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade answers point-in-time and range balance queries over the
// closing balance snapshots of a transaction category. Absence of data is a
// nil pointer or empty slice, never an error.
type BalanceSvcFacade interface {
	// ClosingBalancesInRange returns snapshots with from <= asOf < to, ascending.
	ClosingBalancesInRange(ctx context.Context, categoryID string, from, to time.Time) ([]domain.ClosingBalanceSnapshot, error)

	// ClosingBalancesAtOrAfter returns snapshots with asOf >= ts, ascending.
	ClosingBalancesAtOrAfter(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error)

	// LatestClosingBalanceBefore returns the snapshot with the greatest asOf <= ts,
	// or nil when every snapshot is after ts or the category has none.
	LatestClosingBalanceBefore(ctx context.Context, categoryID string, ts time.Time) (*domain.ClosingBalanceSnapshot, error)

	// FirstSnapshot returns the category's earliest snapshot, or nil when it has none.
	FirstSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error)

	// LastSnapshot returns the category's most recent snapshot, or nil when it has none.
	LastSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error)

	// RecordSnapshot supersedes the category's current snapshot with a new
	// closing balance as of the given moment and returns the stored snapshot.
	RecordSnapshot(ctx context.Context, categoryID string, asOf time.Time, balance decimal.Decimal, recordedBy string) (*domain.ClosingBalanceSnapshot, error)
}
