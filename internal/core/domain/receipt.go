package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a cash-in event. Removal soft-deletes the receipt and triggers
// reconciliation of every invoice it was allocated to.
type Receipt struct {
	ReceiptID  string          `json:"receiptID"` // Primary Key (e.g., UUID)
	Amount     decimal.Decimal `json:"amount"`
	ReceivedAt time.Time       `json:"receivedAt"`
	State      RecordState     `json:"state"`
	AuditFields
}

// ReceiptAllocation links one receipt to one invoice it was applied to.
// Keyed by receipt for the deletion cascade. Amount holds the receipt's amount
// as recorded at allocation time.
type ReceiptAllocation struct {
	AllocationID string          `json:"allocationID"` // Primary Key (e.g., UUID)
	ReceiptID    string          `json:"receiptID"`    // FK -> Receipt (Not Null)
	InvoiceID    string          `json:"invoiceID"`    // FK -> Invoice (Not Null)
	Amount       decimal.Decimal `json:"amount"`
	State        RecordState     `json:"state"`
	AuditFields
}
