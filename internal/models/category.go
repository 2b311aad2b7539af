package models

// TransactionCategory represents a ledger category row.
// Note: ParentCategoryID uses string for nullable foreign key; DB handling may vary.
type TransactionCategory struct {
	CategoryID       string `db:"category_id"`
	Name             string `db:"name"`
	Code             string `db:"code"`
	ParentCategoryID string `db:"parent_category_id"` // Nullable, self-referencing
	AccountID        string `db:"account_id"`         // Chart-of-account linkage
	AuditFields
}
