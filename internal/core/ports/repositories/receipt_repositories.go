package repositories

import (
	"context"

	"github.com/finbooks/accounting_backend/internal/core/domain"
)

// ReceiptRepositoryFacade defines persistence operations for receipts.
type ReceiptRepositoryFacade interface {
	// FindReceiptByID returns the receipt regardless of its lifecycle state, or
	// apperrors.ErrNotFound when no row exists.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// UpdateReceipt persists the receipt's mutable fields (state, audit fields).
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) error
}

// AllocationRepositoryFacade defines persistence operations for receipt
// allocation records.
type AllocationRepositoryFacade interface {
	// SaveAllocation persists a new allocation record.
	SaveAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error

	// FindAllocationsByReceiptID returns the active allocation records of the
	// receipt; an empty slice when it has none.
	FindAllocationsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptAllocation, error)

	// UpdateAllocation persists the allocation's mutable fields.
	UpdateAllocation(ctx context.Context, allocation domain.ReceiptAllocation) error
}
