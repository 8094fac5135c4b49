package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// StampCreated fills all audit fields for a freshly created record.
func (a *AuditFields) StampCreated(by string, at time.Time) {
	a.CreatedAt = at
	a.CreatedBy = by
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
}

// StampUpdated records a modification.
func (a *AuditFields) StampUpdated(by string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = by
}
