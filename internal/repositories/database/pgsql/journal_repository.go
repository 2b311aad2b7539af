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

const lineItemColumns = `line_item_id, journal_id, category_id, amount, line_type, reference_type, reference_id, state, created_at, created_by, last_updated_at, last_updated_by`

// PgxJournalRepository stores journals and their line items.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and line item data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournal saves a journal and its line items within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lineItems []domain.JournalLineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (journal_id, journal_date, description, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, journalQuery,
		m.JournalID,
		m.JournalDate,
		m.Description,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", m.JournalID, err)
	}

	// Use pgx batching for the line item inserts
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_line_items (` + lineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, item := range lineItems {
		mi := mapping.ToModelLineItem(item)
		batch.Queue(lineQuery,
			mi.LineItemID,
			mi.JournalID,
			mi.CategoryID,
			mi.Amount,
			mi.LineType,
			mi.ReferenceType,
			mi.ReferenceID,
			mi.State,
			mi.CreatedAt,
			mi.CreatedBy,
			mi.LastUpdatedAt,
			mi.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute line item batch for journal %s: %w", m.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID returns the journal with the given id.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, journal_date, description, state, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var m models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&m.JournalID,
		&m.JournalDate,
		&m.Description,
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
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// FindLineItemsByJournalID returns all line items of the journal.
func (r *PgxJournalRepository) FindLineItemsByJournalID(ctx context.Context, journalID string) ([]domain.JournalLineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM journal_line_items
		WHERE journal_id = $1
		ORDER BY created_at ASC, line_item_id ASC;
	`
	return r.queryLineItems(ctx, query, journalID)
}

// FindActiveLineItemsByReference returns the non-deleted line items posted for
// the given source document.
func (r *PgxJournalRepository) FindActiveLineItemsByReference(ctx context.Context, refType domain.ReferenceType, refID string) ([]domain.JournalLineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM journal_line_items
		WHERE reference_type = $1 AND reference_id = $2 AND state = $3
		ORDER BY created_at ASC, line_item_id ASC;
	`
	return r.queryLineItems(ctx, query, string(refType), refID, models.Active)
}

// SoftDeleteJournals marks the journals and their line items deleted in one
// DB transaction. Unknown ids are ignored.
func (r *PgxJournalRepository) SoftDeleteJournals(ctx context.Context, journalIDs []string, deletedBy string, deletedAt time.Time) error {
	if len(journalIDs) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	journalQuery := `
		UPDATE journals
		SET state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = ANY($1);
	`
	if _, err := tx.Exec(ctx, journalQuery, journalIDs, models.Deleted, deletedAt, deletedBy); err != nil {
		return fmt.Errorf("failed to soft delete journals: %w", err)
	}

	lineQuery := `
		UPDATE journal_line_items
		SET state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = ANY($1);
	`
	if _, err := tx.Exec(ctx, lineQuery, journalIDs, models.Deleted, deletedAt, deletedBy); err != nil {
		return fmt.Errorf("failed to soft delete journal line items: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxJournalRepository) queryLineItems(ctx context.Context, query string, args ...any) ([]domain.JournalLineItem, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal line items: %w", err)
	}
	defer rows.Close()

	items := []domain.JournalLineItem{}
	for rows.Next() {
		var m models.JournalLineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.JournalID,
			&m.CategoryID,
			&m.Amount,
			&m.LineType,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.State,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line item row: %w", err)
		}
		items = append(items, mapping.ToDomainLineItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating line item rows: %w", err)
	}
	return items, nil
}
