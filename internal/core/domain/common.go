package domain

import "time"

// RecordState is the lifecycle state of a soft-deletable entity. Rows are never
// physically removed; deletion flips the state and every query filters on it.
type RecordState string

const (
	Active  RecordState = "ACTIVE"
	Deleted RecordState = "DELETED"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}
