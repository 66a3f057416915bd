package services

import (
	"context"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its ID.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// GetAssetBySymbol retrieves a specific asset by its trading symbol.
	GetAssetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error)

	// GetAssetByISIN retrieves a specific asset by its ISIN code.
	GetAssetByISIN(ctx context.Context, isin string) (*domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset persists a new asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset replaces the name, symbol and ISIN of an existing asset.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
