package dto

import (
	"time"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
)

// CreateAssetRequest defines the data needed to create a new asset.
type CreateAssetRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
	ISIN   string `json:"isin" binding:"required,isin"`
}

// UpdateAssetRequest defines the data for a full replace of an asset's
// mutable fields. The asset's identity is taken from the URL, not the body.
type UpdateAssetRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
	ISIN   string `json:"isin" binding:"required,isin"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID       string    `json:"assetID"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	ISIN          string    `json:"isin"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAssetResponse converts a domain.Asset to an AssetResponse DTO
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:       a.AssetID,
		Name:          a.Name,
		Symbol:        a.Symbol,
		ISIN:          a.ISIN,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListAssetResponse converts a slice of domain.Asset to AssetResponse DTOs
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}
