package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "DRAFT"
	// InvoicePost means the invoice is fully settled: no outstanding balance.
	InvoicePost          InvoiceStatus = "POST"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
)

// Invoice is a billable document. Once receipts have been allocated to it the
// status is derived, not independently settable: reconciliation recomputes it
// whenever an allocation is removed.
type Invoice struct {
	InvoiceID   string          `json:"invoiceID"` // Primary Key (e.g., UUID)
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      InvoiceStatus   `json:"status"`
	IssuedAt    time.Time       `json:"issuedAt"`
	State       RecordState     `json:"state"`
	AuditFields
}

// StatusAfterUnapplying returns the payment status the invoice must take after
// the given amount is un-applied from it. The comparison is exact decimal
// equality, never epsilon-based.
func (inv Invoice) StatusAfterUnapplying(amount decimal.Decimal) InvoiceStatus {
	if inv.TotalAmount.Sub(amount).IsZero() {
		return InvoicePost
	}
	return InvoicePartiallyPaid
}
