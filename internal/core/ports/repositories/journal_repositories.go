package repositories

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
)

// JournalRepositoryFacade defines persistence operations for journals and
// their line items. Saving a journal saves its line items atomically.
type JournalRepositoryFacade interface {
	SaveJournal(ctx context.Context, journal domain.Journal, lineItems []domain.JournalLineItem) error

	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	FindLineItemsByJournalID(ctx context.Context, journalID string) ([]domain.JournalLineItem, error)

	// FindActiveLineItemsByReference returns the non-deleted line items posted
	// for the given source document; an empty slice when there are none.
	FindActiveLineItemsByReference(ctx context.Context, refType domain.ReferenceType, refID string) ([]domain.JournalLineItem, error)

	// SoftDeleteJournals marks the journals and all their line items deleted in
	// one storage transaction. Unknown ids are ignored.
	SoftDeleteJournals(ctx context.Context, journalIDs []string, deletedBy string, deletedAt time.Time) error
}
