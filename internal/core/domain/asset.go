package domain

// Asset represents a tradable financial instrument tracked by the system.
// Symbol and ISIN are unique across all assets.
type Asset struct {
	AssetID string `json:"assetID"` // Primary Key (UUID)
	Name    string `json:"name"`    // e.g., "Apple Inc."
	Symbol  string `json:"symbol"`  // e.g., "AAPL"
	ISIN    string `json:"isin"`    // e.g., "US0378331005"
	AuditFields
}
