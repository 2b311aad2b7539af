package repositories

import (
	"context"

	"github.com/finbooks/accounting_backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence operations for invoices.
type InvoiceRepositoryFacade interface {
	// FindInvoiceByID returns the invoice, or apperrors.ErrNotFound when no row exists.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// UpdateInvoice persists the invoice's mutable fields (status, state, audit fields).
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}
