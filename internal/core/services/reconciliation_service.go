package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/accounting_backend/internal/apperrors"
	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
)

// reconciliationService keeps invoice payment status consistent with live
// receipt allocations and cascades receipt deletion to journal postings.
//
// The whole DeleteReceipts call is expected to run inside a single storage
// transaction owned by the caller; any repository or gateway error propagates
// unchanged so the caller can roll back.
type reconciliationService struct {
	BaseService
	receiptRepo    portsrepo.ReceiptRepositoryFacade
	allocationRepo portsrepo.AllocationRepositoryFacade
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
	journalRepo    portsrepo.JournalRepositoryFacade
	postingSvc     portssvc.PostingSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	allocationRepo portsrepo.AllocationRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	postingSvc portssvc.PostingSvcFacade,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		receiptRepo:    receiptRepo,
		allocationRepo: allocationRepo,
		invoiceRepo:    invoiceRepo,
		journalRepo:    journalRepo,
		postingSvc:     postingSvc,
	}
}

// Ensure reconciliationService implements the portssvc.ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// DeleteReceipts soft-deletes the receipts and reconciles everything they
// touched. A nil or empty id list returns immediately without any store
// access. Each id is processed independently: one id being unknown or having
// no allocations does not block the rest of the batch.
func (s *reconciliationService) DeleteReceipts(ctx context.Context, receiptIDs []string, deletedBy string) error {
	if len(receiptIDs) == 0 {
		return nil
	}

	now := time.Now()
	for _, receiptID := range receiptIDs {
		if err := s.deleteReceipt(ctx, receiptID, deletedBy, now); err != nil {
			return err
		}
	}
	return nil
}

// deleteReceipt runs the full cascade for one receipt id.
func (s *reconciliationService) deleteReceipt(ctx context.Context, receiptID, deletedBy string, now time.Time) error {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Idempotent delete: an unknown receipt id is nothing to do.
			s.LogDebug(ctx, "Receipt not found during deletion, skipping",
				slog.String("receipt_id", receiptID))
			return nil
		}
		return fmt.Errorf("failed to load receipt %s: %w", receiptID, err)
	}
	if receipt.State == domain.Deleted {
		// Already deleted: nothing left to reconcile and no store mutation.
		s.LogDebug(ctx, "Receipt already deleted, skipping",
			slog.String("receipt_id", receiptID))
		return nil
	}

	receipt.State = domain.Deleted
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = deletedBy

	allocations, err := s.allocationRepo.FindAllocationsByReceiptID(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("failed to load allocations for receipt %s: %w", receiptID, err)
	}

	// Recompute the linked invoice per allocation, not per invoice batch:
	// multiple allocations may target the same invoice within one request.
	for _, allocation := range allocations {
		if err := s.unapplyAllocation(ctx, allocation, *receipt, deletedBy, now); err != nil {
			return err
		}
	}

	if err := s.cascadeJournalDeletion(ctx, *receipt, deletedBy); err != nil {
		return err
	}

	if err := s.receiptRepo.UpdateReceipt(ctx, *receipt); err != nil {
		return fmt.Errorf("failed to persist deleted receipt %s: %w", receiptID, err)
	}

	s.LogInfo(ctx, "Receipt deleted and reconciled",
		slog.String("receipt_id", receiptID),
		slog.Int("allocation_count", len(allocations)))
	return nil
}

// unapplyAllocation marks the allocation deleted and recomputes the linked
// invoice's payment status from the amount being un-applied.
func (s *reconciliationService) unapplyAllocation(ctx context.Context, allocation domain.ReceiptAllocation, receipt domain.Receipt, deletedBy string, now time.Time) error {
	allocation.State = domain.Deleted
	allocation.LastUpdatedAt = now
	allocation.LastUpdatedBy = deletedBy
	if err := s.allocationRepo.UpdateAllocation(ctx, allocation); err != nil {
		return fmt.Errorf("failed to mark allocation %s deleted: %w", allocation.AllocationID, err)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, allocation.InvoiceID)
	if err != nil {
		return fmt.Errorf("failed to load invoice %s for allocation %s: %w", allocation.InvoiceID, allocation.AllocationID, err)
	}

	// The receipt's full amount is the amount being un-applied, matching how
	// the allocation was recorded.
	invoice.Status = invoice.StatusAfterUnapplying(receipt.Amount)
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = deletedBy
	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return fmt.Errorf("failed to persist invoice %s status: %w", invoice.InvoiceID, err)
	}

	s.LogDebug(ctx, "Allocation un-applied",
		slog.String("allocation_id", allocation.AllocationID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("new_status", string(invoice.Status)))
	return nil
}

// cascadeJournalDeletion removes the journals the receipt's posting produced.
// The posting gateway is called only when at least one active line item
// references the receipt.
func (s *reconciliationService) cascadeJournalDeletion(ctx context.Context, receipt domain.Receipt, deletedBy string) error {
	lineItems, err := s.journalRepo.FindActiveLineItemsByReference(ctx, domain.RefReceipt, receipt.ReceiptID)
	if err != nil {
		return fmt.Errorf("failed to find line items for receipt %s: %w", receipt.ReceiptID, err)
	}
	if len(lineItems) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(lineItems))
	journalIDs := make([]string, 0, len(lineItems))
	for _, li := range lineItems {
		if _, ok := seen[li.JournalID]; ok {
			continue
		}
		seen[li.JournalID] = struct{}{}
		journalIDs = append(journalIDs, li.JournalID)
	}

	if err := s.postingSvc.DeleteJournals(ctx, journalIDs, deletedBy); err != nil {
		return fmt.Errorf("failed to delete journals for receipt %s: %w", receipt.ReceiptID, err)
	}
	return nil
}
