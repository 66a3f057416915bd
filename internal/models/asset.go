package models

// Asset mirrors a row of the assets table.
type Asset struct {
	AssetID string `json:"assetID"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	ISIN    string `json:"isin"`
	AuditFields
}
