package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
)

// SnapshotRepositoryFacade defines persistence operations for closing balance
// snapshots. Range and list queries return ascending results; absence of data
// is an empty slice or apperrors.ErrNotFound, never a business error.
type SnapshotRepositoryFacade interface {
	// SaveSnapshot persists a new snapshot. Snapshots are immutable; a newer
	// snapshot supersedes the current one rather than updating it.
	SaveSnapshot(ctx context.Context, snapshot domain.ClosingBalanceSnapshot) error

	// FindSnapshotsInRange returns snapshots with from <= asOf < to, ascending by asOf.
	FindSnapshotsInRange(ctx context.Context, categoryID string, from, to time.Time) ([]domain.ClosingBalanceSnapshot, error)

	// FindSnapshotsAtOrAfter returns snapshots with asOf >= ts, ascending by asOf.
	FindSnapshotsAtOrAfter(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error)

	// FindSnapshotsAtOrBeforeDesc returns snapshots with asOf <= ts, descending
	// by asOf; the first element is the latest snapshot before ts.
	FindSnapshotsAtOrBeforeDesc(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error)

	// FindFirstSnapshot returns the earliest snapshot of the category, or
	// apperrors.ErrNotFound when the category has none.
	FindFirstSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error)

	// FindLastSnapshot returns the most recent snapshot of the category, or
	// apperrors.ErrNotFound when the category has none.
	FindLastSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error)
}
