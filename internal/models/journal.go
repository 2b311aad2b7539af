package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal represents a single, balanced financial event composed of multiple line items.
type Journal struct {
	JournalID   string      `db:"journal_id"`
	JournalDate time.Time   `db:"journal_date"`
	Description string      `db:"description"` // Nullable user description
	State       RecordState `db:"state"`
	AuditFields
}

// JournalLineItem represents a single debit or credit leg within a Journal.
type JournalLineItem struct {
	LineItemID    string          `db:"line_item_id"`
	JournalID     string          `db:"journal_id"`
	CategoryID    string          `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	LineType      string          `db:"line_type"`      // DEBIT or CREDIT
	ReferenceType string          `db:"reference_type"` // RECEIPT, INVOICE, EXPENSE
	ReferenceID   string          `db:"reference_id"`
	State         RecordState     `db:"state"`
	AuditFields
}
