package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a billable document row.
type Invoice struct {
	InvoiceID   string          `db:"invoice_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"` // DRAFT, POST, PARTIALLY_PAID
	IssuedAt    time.Time       `db:"issued_at"`
	State       RecordState     `db:"state"`
	AuditFields
}
