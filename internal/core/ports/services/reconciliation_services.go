package services

import "context"

// ReconciliationSvcFacade keeps invoice payment status consistent with live
// receipt allocations and cascades receipt deletion to journal postings.
type ReconciliationSvcFacade interface {
	// DeleteReceipts soft-deletes the receipts, marks their allocation records
	// deleted, recomputes each affected invoice's payment status, and requests
	// deletion of the journals the receipts produced. A nil or empty id list is
	// a no-op; unknown and already-deleted ids are skipped silently with no
	// store mutation. Each id is processed
	// independently of the others in the same call.
	DeleteReceipts(ctx context.Context, receiptIDs []string, deletedBy string) error
}
