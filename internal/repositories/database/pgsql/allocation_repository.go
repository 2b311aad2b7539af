package pgsql

import (
	"context"
	"fmt"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	"github.com/finbooks/accounting_backend/internal/models"
	"github.com/finbooks/accounting_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAllocationRepository stores receipt allocation records.
type PgxAllocationRepository struct {
	BaseRepository
}

// newPgxAllocationRepository creates a new repository for allocation record data.
func newPgxAllocationRepository(pool *pgxpool.Pool) portsrepo.AllocationRepositoryFacade {
	return &PgxAllocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAllocationRepository implements portsrepo.AllocationRepositoryFacade
var _ portsrepo.AllocationRepositoryFacade = (*PgxAllocationRepository)(nil)

// SaveAllocation inserts a new allocation record.
func (r *PgxAllocationRepository) SaveAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error {
	m := mapping.ToModelAllocation(allocation)
	query := `
		INSERT INTO receipt_allocations (allocation_id, receipt_id, invoice_id, amount, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AllocationID,
		m.ReceiptID,
		m.InvoiceID,
		m.Amount,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert allocation %s: %w", m.AllocationID, err)
	}
	return nil
}

// FindAllocationsByReceiptID returns the receipt's active allocation records.
// An empty result is valid, not an error.
func (r *PgxAllocationRepository) FindAllocationsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptAllocation, error) {
	query := `
		SELECT allocation_id, receipt_id, invoice_id, amount, state, created_at, created_by, last_updated_at, last_updated_by
		FROM receipt_allocations
		WHERE receipt_id = $1 AND state = $2
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, receiptID, models.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for receipt %s: %w", receiptID, err)
	}
	defer rows.Close()

	allocations := []domain.ReceiptAllocation{}
	for rows.Next() {
		var m models.ReceiptAllocation
		if err := rows.Scan(
			&m.AllocationID,
			&m.ReceiptID,
			&m.InvoiceID,
			&m.Amount,
			&m.State,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allocation row: %w", err)
		}
		allocations = append(allocations, mapping.ToDomainAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating allocation rows: %w", err)
	}
	return allocations, nil
}

// UpdateAllocation persists the allocation's mutable fields.
func (r *PgxAllocationRepository) UpdateAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error {
	m := mapping.ToModelAllocation(allocation)
	query := `
		UPDATE receipt_allocations
		SET state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE allocation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.AllocationID, m.State, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update allocation %s: %w", m.AllocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
