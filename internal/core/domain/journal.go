package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates whether a journal line item is a Debit or a Credit leg.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// ReferenceType identifies the kind of source document a journal line item was
// posted for.
type ReferenceType string

const (
	RefReceipt ReferenceType = "RECEIPT"
	RefInvoice ReferenceType = "INVOICE"
	RefExpense ReferenceType = "EXPENSE"
)

// Journal groups the line items of a single atomic accounting event. Journals
// are created and soft-deleted as a unit; deletion cascades from the source
// document that produced them.
type Journal struct {
	JournalID   string      `json:"journalID"`   // Primary Key (e.g., UUID)
	JournalDate time.Time   `json:"journalDate"` // Date the event occurred
	Description string      `json:"description"` // Nullable user description
	State       RecordState `json:"state"`
	AuditFields
}

// JournalLineItem is one debit or credit leg of a double-entry posting.
// Within one journal the debit legs and credit legs must sum to equal amounts.
type JournalLineItem struct {
	LineItemID    string          `json:"lineItemID"` // Primary Key (e.g., UUID)
	JournalID     string          `json:"journalID"`  // FK -> Journal (Not Null)
	CategoryID    string          `json:"categoryID"` // FK -> TransactionCategory (Not Null)
	Amount        decimal.Decimal `json:"amount"`     // Positive value
	LineType      LineType        `json:"lineType"`   // DEBIT or CREDIT
	ReferenceType ReferenceType   `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"` // Id of the source document
	State         RecordState     `json:"state"`
	AuditFields
}

// SignedAmount returns the line's contribution to its category balance using
// the debit-positive convention.
func (li JournalLineItem) SignedAmount() decimal.Decimal {
	if li.LineType == Debit {
		return li.Amount
	}
	return li.Amount.Neg()
}
