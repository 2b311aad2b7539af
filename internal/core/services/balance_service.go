package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
)

// balanceService answers point-in-time and range balance queries over the
// closing balance snapshots of a transaction category.
type balanceService struct {
	BaseService
	snapshotRepo portsrepo.SnapshotRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(snapshotRepo portsrepo.SnapshotRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{snapshotRepo: snapshotRepo}
}

// Ensure balanceService implements the portssvc.BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// ClosingBalancesInRange returns snapshots with from <= asOf < to, ascending by asOf.
// An empty result means no snapshot was recorded in the window; it is not an error.
func (s *balanceService) ClosingBalancesInRange(ctx context.Context, categoryID string, from, to time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	snapshots, err := s.snapshotRepo.FindSnapshotsInRange(ctx, categoryID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshots in range for category %s: %w", categoryID, err)
	}
	return snapshots, nil
}

// ClosingBalancesAtOrAfter returns all snapshots with asOf >= ts, ascending by asOf.
func (s *balanceService) ClosingBalancesAtOrAfter(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	snapshots, err := s.snapshotRepo.FindSnapshotsAtOrAfter(ctx, categoryID, ts)
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshots at or after %s for category %s: %w", ts.Format(time.RFC3339), categoryID, err)
	}
	return snapshots, nil
}

// LatestClosingBalanceBefore returns the snapshot with the greatest asOf <= ts.
// The underlying query orders descending; the first element is authoritative
// regardless of how many candidate rows come back.
func (s *balanceService) LatestClosingBalanceBefore(ctx context.Context, categoryID string, ts time.Time) (*domain.ClosingBalanceSnapshot, error) {
	snapshots, err := s.snapshotRepo.FindSnapshotsAtOrBeforeDesc(ctx, categoryID, ts)
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshots before %s for category %s: %w", ts.Format(time.RFC3339), categoryID, err)
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	latest := snapshots[0]
	return &latest, nil
}

// FirstSnapshot returns the category's earliest snapshot, used to seed report
// opening balances. Nil when the category has no snapshots.
func (s *balanceService) FirstSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	snapshot, err := s.snapshotRepo.FindFirstSnapshot(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find first snapshot for category %s: %w", categoryID, err)
	}
	return snapshot, nil
}

// LastSnapshot returns the category's most recent snapshot. Nil when the
// category has no snapshots.
func (s *balanceService) LastSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	snapshot, err := s.snapshotRepo.FindLastSnapshot(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last snapshot for category %s: %w", categoryID, err)
	}
	return snapshot, nil
}

// RecordSnapshot stores a new closing balance snapshot for the category.
// Snapshots are immutable; the new row supersedes the current one by carrying
// a later asOf timestamp.
func (s *balanceService) RecordSnapshot(ctx context.Context, categoryID string, asOf time.Time, balance decimal.Decimal, recordedBy string) (*domain.ClosingBalanceSnapshot, error) {
	snapshot := domain.ClosingBalanceSnapshot{
		SnapshotID: uuid.NewString(),
		CategoryID: categoryID,
		AsOf:       asOf,
		Balance:    balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     asOf,
			CreatedBy:     recordedBy,
			LastUpdatedAt: asOf,
			LastUpdatedBy: recordedBy,
		},
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save snapshot for category %s: %w", categoryID, err)
	}

	s.LogDebug(ctx, "Recorded closing balance snapshot",
		slog.String("category_id", categoryID),
		slog.String("balance", balance.String()),
		slog.Time("as_of", asOf))
	return &snapshot, nil
}
