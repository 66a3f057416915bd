package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price mirrors a row of the prices table.
// Note: PriceValue is stored as NUMERIC(18,4) and must use a precise
// decimal type like github.com/shopspring/decimal.
type Price struct {
	PriceID     string          `json:"priceID"`
	AssetID     string          `json:"assetID"`
	SourceID    string          `json:"sourceID"`
	PriceDate   time.Time       `json:"priceDate"`
	PriceValue  decimal.Decimal `json:"priceValue"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// PriceHistory mirrors a row of the price_histories table.
type PriceHistory struct {
	PriceHistoryID string          `json:"priceHistoryID"`
	AssetID        string          `json:"assetID"`
	SourceID       string          `json:"sourceID"`
	PriceDate      time.Time       `json:"priceDate"`
	PriceValue     decimal.Decimal `json:"priceValue"`
	ValidFrom      time.Time       `json:"validFrom"`
	ValidTo        *time.Time      `json:"validTo"`
}

// PriceDetail is the joined row shape returned by the price listing query.
type PriceDetail struct {
	Price
	AssetName   string `json:"assetName"`
	AssetSymbol string `json:"assetSymbol"`
	SourceName  string `json:"sourceName"`
}
