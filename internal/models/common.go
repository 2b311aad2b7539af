package models

import "time"

// RecordState mirrors the domain lifecycle state at the storage layer.
type RecordState string

const (
	Active  RecordState = "ACTIVE"
	Deleted RecordState = "DELETED"
)

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
