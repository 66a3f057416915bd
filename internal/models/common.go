package models

import "time"

// AuditFields holds standard audit timestamps stored alongside reference rows.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
