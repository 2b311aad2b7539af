package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosingBalanceSnapshot represents a closing balance row. Rows are insert-only.
type ClosingBalanceSnapshot struct {
	SnapshotID string          `db:"snapshot_id"`
	CategoryID string          `db:"category_id"`
	AsOf       time.Time       `db:"as_of"`
	Balance    decimal.Decimal `db:"balance"`
	AuditFields
}
