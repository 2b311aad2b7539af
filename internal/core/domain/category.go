package domain

// TransactionCategory is a named bucket in the chart of accounts that journal
// line items are classified into. Categories are admin-managed elsewhere; this
// core reads them and treats them as immutable once referenced by postings.
type TransactionCategory struct {
	CategoryID       string `json:"categoryID"`       // Primary Key (e.g., UUID)
	Name             string `json:"name"`             // e.g. "Accounts Receivable"
	Code             string `json:"code"`             // Short ledger code, user-facing
	ParentCategoryID string `json:"parentCategoryID"` // Nullable, self-referencing
	AccountID        string `json:"accountID"`        // Chart-of-account linkage
	AuditFields
}
