package services

import (
	"context"
	"time"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingSvcFacade is the journal posting gateway: it owns creation and
// deletion of journals and their line items. Posting rules (balancing, line
// construction) live here; other components only call it.
type PostingSvcFacade interface {
	// CreateJournalForDocument validates that the lines balance, persists the
	// journal with its line items, and records a superseding closing balance
	// snapshot for every affected category.
	CreateJournalForDocument(ctx context.Context, req CreateJournalRequest) (*domain.Journal, error)

	// DeleteJournals soft-deletes the journals and cascades the soft delete to
	// their line items. An empty id list is a no-op.
	DeleteJournals(ctx context.Context, journalIDs []string, deletedBy string) error
}

// CreateJournalLine is one leg of a posting request.
type CreateJournalLine struct {
	CategoryID string
	Amount     decimal.Decimal
	LineType   domain.LineType
}

// CreateJournalRequest describes a posting for a source document.
type CreateJournalRequest struct {
	ReferenceType domain.ReferenceType
	ReferenceID   string
	JournalDate   time.Time
	Description   string
	Lines         []CreateJournalLine
	CreatedBy     string
}
