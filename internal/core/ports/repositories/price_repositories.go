package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceReader defines read operations for price snapshots and history
type PriceReader interface {
	// FindPriceForUpdate retrieves the snapshot for a (asset, source, date) key
	// inside tx, taking a row lock so concurrent upserts on the key serialize.
	FindPriceForUpdate(ctx context.Context, tx pgx.Tx, assetID, sourceID string, priceDate time.Time) (*domain.Price, error)

	// FindOpenHistory retrieves the currently active history interval
	// (valid_to IS NULL) for a (asset, source, date) key inside tx.
	FindOpenHistory(ctx context.Context, tx pgx.Tx, assetID, sourceID string, priceDate time.Time) (*domain.PriceHistory, error)

	// ListPrices retrieves snapshots for any of the given assets on an exact
	// date, optionally filtered by source, joined with asset and source names.
	ListPrices(ctx context.Context, assetIDs []string, priceDate time.Time, sourceID *string) ([]domain.PriceDetail, error)
}

// PriceWriter defines write operations for price snapshots and history.
// All writes run inside a caller-owned transaction so the upsert is atomic.
type PriceWriter interface {
	// InsertPrice persists a new snapshot row.
	InsertPrice(ctx context.Context, tx pgx.Tx, price domain.Price) error

	// UpdatePriceValue updates an existing snapshot's value and timestamp.
	UpdatePriceValue(ctx context.Context, tx pgx.Tx, priceID string, value decimal.Decimal, lastUpdated time.Time) error

	// InsertHistory persists a new history interval.
	InsertHistory(ctx context.Context, tx pgx.Tx, history domain.PriceHistory) error

	// CloseHistory stamps valid_to on a previously open history interval.
	CloseHistory(ctx context.Context, tx pgx.Tx, priceHistoryID string, validTo time.Time) error
}

// PriceRepositoryFacade combines all price-related repository interfaces
type PriceRepositoryFacade interface {
	PriceReader
	PriceWriter
}

// PriceRepositoryWithTx extends PriceRepositoryFacade with transaction capabilities
type PriceRepositoryWithTx interface {
	PriceRepositoryFacade
	TransactionManager
}
