package services

import (
	"context"
	"time"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

// PriceReaderSvc defines read operations for price snapshots
type PriceReaderSvc interface {
	// GetPrices retrieves snapshots for the given assets on an exact date,
	// optionally filtered by source, joined with asset and source names.
	GetPrices(ctx context.Context, assetIDs []string, priceDate time.Time, sourceID *string) ([]domain.PriceDetail, error)

	// GetPrice retrieves the snapshot for a single asset on a date.
	GetPrice(ctx context.Context, assetID string, priceDate time.Time, sourceID *string) (*domain.PriceDetail, error)
}

// PriceWriterSvc defines write operations for price snapshots
type PriceWriterSvc interface {
	// SetPrice inserts or updates the snapshot for a (asset, source, date)
	// key, maintaining the history audit trail. Writing an unchanged value
	// is a no-op.
	SetPrice(ctx context.Context, req dto.SetPriceRequest) error
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}
