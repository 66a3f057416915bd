package domain

// Source represents a provider of price data (e.g., an exchange or data vendor).
// Name is unique across all sources.
type Source struct {
	SourceID string `json:"sourceID"` // Primary Key (UUID)
	Name     string `json:"name"`     // e.g., "Yahoo Finance"
	AuditFields
}
