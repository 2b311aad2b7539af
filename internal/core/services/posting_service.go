package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbooks/accounting_backend/internal/core/domain"
	portsrepo "github.com/finbooks/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/accounting_backend/internal/core/ports/services"
)

var (
	ErrJournalUnbalanced = errors.New("journal line items do not balance")
	ErrJournalMinEntries = errors.New("journal must have at least two line items")
)

// postingService owns journal creation and deletion. Posting a document
// produces a balanced journal plus a superseding closing balance snapshot per
// affected category; deleting journals cascades the soft delete to their line
// items at the repository level.
type postingService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	balanceSvc  portssvc.BalanceSvcFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, balanceSvc portssvc.BalanceSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo: journalRepo,
		balanceSvc:  balanceSvc,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// validateBalance checks the double-entry invariant: within one journal the
// debit legs and credit legs must sum to equal amounts.
func (s *postingService) validateBalance(lines []portssvc.CreateJournalLine) error {
	if len(lines) < 2 {
		return ErrJournalMinEntries
	}

	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("line amount must be positive for category %s", line.CategoryID)
		}
		if line.LineType == domain.Debit {
			debitsSum = debitsSum.Add(line.Amount)
		} else {
			creditsSum = creditsSum.Add(line.Amount)
		}
	}

	if !debitsSum.Equal(creditsSum) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrJournalUnbalanced, debitsSum.String(), creditsSum.String())
	}
	return nil
}

// CreateJournalForDocument validates the lines, persists the journal with its
// line items, and records a superseding snapshot for every affected category.
func (s *postingService) CreateJournalForDocument(ctx context.Context, req portssvc.CreateJournalRequest) (*domain.Journal, error) {
	if err := s.validateBalance(req.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     req.CreatedBy,
		LastUpdatedAt: now,
		LastUpdatedBy: req.CreatedBy,
	}

	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		JournalDate: req.JournalDate,
		Description: req.Description,
		State:       domain.Active,
		AuditFields: audit,
	}

	lineItems := make([]domain.JournalLineItem, 0, len(req.Lines))
	// Net balance change per category, debit positive.
	balanceChanges := make(map[string]decimal.Decimal, len(req.Lines))
	for _, line := range req.Lines {
		item := domain.JournalLineItem{
			LineItemID:    uuid.NewString(),
			JournalID:     journal.JournalID,
			CategoryID:    line.CategoryID,
			Amount:        line.Amount,
			LineType:      line.LineType,
			ReferenceType: req.ReferenceType,
			ReferenceID:   req.ReferenceID,
			State:         domain.Active,
			AuditFields:   audit,
		}
		lineItems = append(lineItems, item)
		balanceChanges[line.CategoryID] = balanceChanges[line.CategoryID].Add(item.SignedAmount())
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lineItems); err != nil {
		return nil, fmt.Errorf("failed to save journal for %s %s: %w", req.ReferenceType, req.ReferenceID, err)
	}

	// Supersede each affected category's closing balance snapshot.
	for categoryID, change := range balanceChanges {
		previous := decimal.Zero
		last, err := s.balanceSvc.LastSnapshot(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to read last snapshot for category %s: %w", categoryID, err)
		}
		if last != nil {
			previous = last.Balance
		}
		if _, err := s.balanceSvc.RecordSnapshot(ctx, categoryID, now, previous.Add(change), req.CreatedBy); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("reference_type", string(req.ReferenceType)),
		slog.String("reference_id", req.ReferenceID),
		slog.Int("line_count", len(lineItems)))
	return &journal, nil
}

// DeleteJournals soft-deletes the journals and their line items. An empty id
// list is a no-op.
func (s *postingService) DeleteJournals(ctx context.Context, journalIDs []string, deletedBy string) error {
	if len(journalIDs) == 0 {
		return nil
	}

	if err := s.journalRepo.SoftDeleteJournals(ctx, journalIDs, deletedBy, time.Now()); err != nil {
		return fmt.Errorf("failed to soft delete journals: %w", err)
	}

	s.LogInfo(ctx, "Journals deleted", slog.Int("journal_count", len(journalIDs)))
	return nil
}
