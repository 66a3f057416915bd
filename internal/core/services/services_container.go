package services

import (
	"log/slog"

	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Asset:  NewAssetService(repos.AssetRepo),
		Source: NewSourceService(repos.SourceRepo),
		Price:  NewPriceService(repos.PriceRepo),
		Seeder: NewSeederService(repos.AssetRepo, repos.SourceRepo, logger),
	}
}
