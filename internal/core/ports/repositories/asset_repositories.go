package repositories

import (
	"context"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its ID.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssetBySymbol retrieves a specific asset by its unique trading symbol.
	FindAssetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error)

	// FindAssetByISIN retrieves a specific asset by its unique ISIN code.
	FindAssetByISIN(ctx context.Context, isin string) (*domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset replaces the mutable fields of an existing asset.
	UpdateAsset(ctx context.Context, asset domain.Asset) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
