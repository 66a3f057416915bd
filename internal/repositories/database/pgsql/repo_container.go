package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	assetRepo := newPgxAssetRepository(dbPool)
	sourceRepo := newPgxSourceRepository(dbPool)
	priceRepo := newPgxPriceRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AssetRepo:  assetRepo,
		SourceRepo: sourceRepo,
		PriceRepo:  priceRepo,
	}
}
