package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt represents a cash-in row.
type Receipt struct {
	ReceiptID  string          `db:"receipt_id"`
	Amount     decimal.Decimal `db:"amount"`
	ReceivedAt time.Time       `db:"received_at"`
	State      RecordState     `db:"state"`
	AuditFields
}

// ReceiptAllocation links a receipt to an invoice it was applied to.
type ReceiptAllocation struct {
	AllocationID string          `db:"allocation_id"`
	ReceiptID    string          `db:"receipt_id"`
	InvoiceID    string          `db:"invoice_id"`
	Amount       decimal.Decimal `db:"amount"`
	State        RecordState     `db:"state"`
	AuditFields
}
