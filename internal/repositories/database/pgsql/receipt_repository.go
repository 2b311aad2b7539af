package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	"github.com/finbooks/accounting_backend/internal/models"
	"github.com/finbooks/accounting_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReceiptRepository stores receipts.
type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

// FindReceiptByID returns the receipt regardless of its lifecycle state.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `
		SELECT receipt_id, amount, received_at, state, created_at, created_by, last_updated_at, last_updated_by
		FROM receipts
		WHERE receipt_id = $1;
	`
	var m models.Receipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID,
		&m.Amount,
		&m.ReceivedAt,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}
	receipt := mapping.ToDomainReceipt(m)
	return &receipt, nil
}

// UpdateReceipt persists the receipt's mutable fields.
func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
		UPDATE receipts
		SET state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE receipt_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ReceiptID, m.State, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update receipt %s: %w", m.ReceiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
