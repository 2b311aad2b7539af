package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingBalanceSnapshot is the running balance of a transaction category as of
// a point in time. Snapshots are immutable: a posting that changes a category's
// balance records a new snapshot with a later timestamp rather than updating
// the existing one, so historical snapshots form a totally ordered series per
// category.
type ClosingBalanceSnapshot struct {
	SnapshotID string          `json:"snapshotID"` // Primary Key (e.g., UUID)
	CategoryID string          `json:"categoryID"` // FK -> TransactionCategory
	AsOf       time.Time       `json:"asOf"`       // Moment the balance was closed
	Balance    decimal.Decimal `json:"balance"`    // Running balance at AsOf
	AuditFields
}
