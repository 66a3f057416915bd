package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the single current snapshot of an asset's value for a given
// source and date. At most one Price exists per (asset, source, date) key;
// it is created on the first write for the key and updated in place after
// that. Interval truth lives in PriceHistory, not here.
type Price struct {
	PriceID     string          `json:"priceID"` // Primary Key (UUID)
	AssetID     string          `json:"assetID"` // FK -> Asset.assetID
	SourceID    string          `json:"sourceID"` // FK -> Source.sourceID
	PriceDate   time.Time       `json:"priceDate"` // Calendar date the value applies to
	PriceValue  decimal.Decimal `json:"priceValue"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// PriceHistory is one interval of the audit trail: the period during which
// a given value was in effect for a (asset, source, date) key. ValidFrom is
// inclusive, ValidTo exclusive; a nil ValidTo marks the currently active
// interval. Rows are never deleted, and only ever mutated to stamp ValidTo
// when a new value supersedes them.
type PriceHistory struct {
	PriceHistoryID string          `json:"priceHistoryID"` // Primary Key (UUID)
	AssetID        string          `json:"assetID"`
	SourceID       string          `json:"sourceID"`
	PriceDate      time.Time       `json:"priceDate"`
	PriceValue     decimal.Decimal `json:"priceValue"`
	ValidFrom      time.Time       `json:"validFrom"`
	ValidTo        *time.Time      `json:"validTo,omitempty"`
}

// PriceDetail is a price snapshot joined with the names of its asset and
// source, as returned by the price query endpoint.
type PriceDetail struct {
	Price
	AssetName   string `json:"assetName"`
	AssetSymbol string `json:"assetSymbol"`
	SourceName  string `json:"sourceName"`
}
