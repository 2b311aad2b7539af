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

const categoryColumns = `category_id, name, code, COALESCE(parent_category_id, ''), account_id, created_at, created_by, last_updated_at, last_updated_by`

// PgxCategoryRepository reads the transaction category registry. Categories
// are admin-managed outside this core; there is no write path here.
type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// FindCategoryByID returns the category with the given id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.TransactionCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM transaction_categories
		WHERE category_id = $1;
	`
	var m models.TransactionCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID,
		&m.Name,
		&m.Code,
		&m.ParentCategoryID,
		&m.AccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// ListCategories returns every category, ordered by code.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.TransactionCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM transaction_categories
		ORDER BY code ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.TransactionCategory{}
	for rows.Next() {
		var m models.TransactionCategory
		if err := rows.Scan(
			&m.CategoryID,
			&m.Name,
			&m.Code,
			&m.ParentCategoryID,
			&m.AccountID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating category rows: %w", err)
	}
	return categories, nil
}
