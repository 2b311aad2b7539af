package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	"github.com/finbooks/accounting_backend/internal/models"
	"github.com/finbooks/accounting_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotColumns = `snapshot_id, category_id, as_of, balance, created_at, created_by, last_updated_at, last_updated_by`

// PgxSnapshotRepository stores closing balance snapshots. Snapshots are
// insert-only; there is no update path.
type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a new repository for closing balance snapshot data.
func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepositoryFacade {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSnapshotRepository implements portsrepo.SnapshotRepositoryFacade
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

// SaveSnapshot inserts a new snapshot row.
func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.ClosingBalanceSnapshot) error {
	m := mapping.ToModelSnapshot(snapshot)
	query := `
		INSERT INTO closing_balance_snapshots (` + snapshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SnapshotID,
		m.CategoryID,
		m.AsOf,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot %s: %w", m.SnapshotID, err)
	}
	return nil
}

// FindSnapshotsInRange returns snapshots with from <= as_of < to, ascending.
func (r *PgxSnapshotRepository) FindSnapshotsInRange(ctx context.Context, categoryID string, from, to time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM closing_balance_snapshots
		WHERE category_id = $1 AND as_of >= $2 AND as_of < $3
		ORDER BY as_of ASC;
	`
	return r.querySnapshots(ctx, query, categoryID, from, to)
}

// FindSnapshotsAtOrAfter returns snapshots with as_of >= ts, ascending.
func (r *PgxSnapshotRepository) FindSnapshotsAtOrAfter(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM closing_balance_snapshots
		WHERE category_id = $1 AND as_of >= $2
		ORDER BY as_of ASC;
	`
	return r.querySnapshots(ctx, query, categoryID, ts)
}

// FindSnapshotsAtOrBeforeDesc returns snapshots with as_of <= ts, descending,
// so the first row is the latest snapshot before ts.
func (r *PgxSnapshotRepository) FindSnapshotsAtOrBeforeDesc(ctx context.Context, categoryID string, ts time.Time) ([]domain.ClosingBalanceSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM closing_balance_snapshots
		WHERE category_id = $1 AND as_of <= $2
		ORDER BY as_of DESC;
	`
	return r.querySnapshots(ctx, query, categoryID, ts)
}

// FindFirstSnapshot returns the category's earliest snapshot.
func (r *PgxSnapshotRepository) FindFirstSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM closing_balance_snapshots
		WHERE category_id = $1
		ORDER BY as_of ASC
		LIMIT 1;
	`
	return r.querySnapshot(ctx, query, categoryID)
}

// FindLastSnapshot returns the category's most recent snapshot.
func (r *PgxSnapshotRepository) FindLastSnapshot(ctx context.Context, categoryID string) (*domain.ClosingBalanceSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM closing_balance_snapshots
		WHERE category_id = $1
		ORDER BY as_of DESC
		LIMIT 1;
	`
	return r.querySnapshot(ctx, query, categoryID)
}

func (r *PgxSnapshotRepository) querySnapshot(ctx context.Context, query string, args ...any) (*domain.ClosingBalanceSnapshot, error) {
	var m models.ClosingBalanceSnapshot
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.SnapshotID,
		&m.CategoryID,
		&m.AsOf,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	snapshot := mapping.ToDomainSnapshot(m)
	return &snapshot, nil
}

func (r *PgxSnapshotRepository) querySnapshots(ctx context.Context, query string, args ...any) ([]domain.ClosingBalanceSnapshot, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.ClosingBalanceSnapshot{}
	for rows.Next() {
		var m models.ClosingBalanceSnapshot
		if err := rows.Scan(
			&m.SnapshotID,
			&m.CategoryID,
			&m.AsOf,
			&m.Balance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, mapping.ToDomainSnapshot(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating snapshot rows: %w", err)
	}
	return snapshots, nil
}
