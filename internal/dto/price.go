package dto

import (
	"time"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// SetPriceRequest defines the data needed to insert or update a price
// snapshot for a (asset, source, date) key.
type SetPriceRequest struct {
	AssetID    string          `json:"assetId" binding:"required,uuid"`
	SourceID   string          `json:"sourceId" binding:"required,uuid"`
	PriceDate  string          `json:"date" binding:"required,datetime=2006-01-02"`
	PriceValue decimal.Decimal `json:"value" binding:"required"`
}

// ListPricesQuery defines the query parameters for the price listing endpoint.
// Asset ids are passed as a comma-separated list.
type ListPricesQuery struct {
	Date     string   `form:"date" binding:"required,datetime=2006-01-02"`
	AssetIDs []string `form:"assetIds" binding:"required,min=1,dive,uuid" collection_format:"csv"`
	SourceID *string  `form:"sourceId" binding:"omitempty,uuid"`
}

// PriceResponse defines the data returned for a price snapshot, joined with
// the asset and source names.
type PriceResponse struct {
	PriceID     string          `json:"priceID"`
	AssetID     string          `json:"assetID"`
	AssetName   string          `json:"assetName"`
	AssetSymbol string          `json:"assetSymbol"`
	SourceID    string          `json:"sourceID"`
	SourceName  string          `json:"sourceName"`
	PriceDate   string          `json:"priceDate"`
	PriceValue  decimal.Decimal `json:"priceValue"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ToPriceResponse converts a domain.PriceDetail to a PriceResponse DTO
func ToPriceResponse(p *domain.PriceDetail) PriceResponse {
	return PriceResponse{
		PriceID:     p.PriceID,
		AssetID:     p.AssetID,
		AssetName:   p.AssetName,
		AssetSymbol: p.AssetSymbol,
		SourceID:    p.SourceID,
		SourceName:  p.SourceName,
		PriceDate:   p.PriceDate.Format(DateLayout),
		PriceValue:  p.PriceValue,
		LastUpdated: p.LastUpdated,
	}
}

// ToListPriceResponse converts a slice of domain.PriceDetail to PriceResponse DTOs
func ToListPriceResponse(prices []domain.PriceDetail) []PriceResponse {
	res := make([]PriceResponse, len(prices))
	for i := range prices {
		res[i] = ToPriceResponse(&prices[i])
	}
	return res
}
