package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
)

type seederService struct {
	assetRepo  portsrepo.AssetRepositoryFacade
	sourceRepo portsrepo.SourceRepositoryFacade
	logger     *slog.Logger
}

// NewSeederService creates the startup reference data seeder.
func NewSeederService(assetRepo portsrepo.AssetRepositoryFacade, sourceRepo portsrepo.SourceRepositoryFacade, logger *slog.Logger) portssvc.SeederSvc {
	return &seederService{assetRepo: assetRepo, sourceRepo: sourceRepo, logger: logger}
}

var _ portssvc.SeederSvc = (*seederService)(nil)

// SeedReferenceData populates a small set of well-known assets and sources
// when the respective tables are empty. Existing data is left untouched.
func (s *seederService) SeedReferenceData(ctx context.Context) error {
	now := time.Now().UTC()

	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing assets: %w", err)
	}
	if len(assets) == 0 {
		seedAssets := []domain.Asset{
			{AssetID: uuid.NewString(), Name: "Apple Inc.", Symbol: "AAPL", ISIN: "US0378331005"},
			{AssetID: uuid.NewString(), Name: "Microsoft Corp.", Symbol: "MSFT", ISIN: "US5949181045"},
		}
		for _, asset := range seedAssets {
			asset.CreatedAt = now
			asset.LastUpdatedAt = now
			if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
				return fmt.Errorf("failed to seed asset %s: %w", asset.Symbol, err)
			}
		}
		s.logger.Info("Seeded assets", slog.Int("count", len(seedAssets)))
	}

	sources, err := s.sourceRepo.ListSources(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing sources: %w", err)
	}
	if len(sources) == 0 {
		seedSources := []domain.Source{
			{SourceID: uuid.NewString(), Name: "Yahoo Finance"},
			{SourceID: uuid.NewString(), Name: "Bloomberg"},
		}
		for _, source := range seedSources {
			source.CreatedAt = now
			source.LastUpdatedAt = now
			if err := s.sourceRepo.SaveSource(ctx, source); err != nil {
				return fmt.Errorf("failed to seed source %s: %w", source.Name, err)
			}
		}
		s.logger.Info("Seeded sources", slog.Int("count", len(seedSources)))
	}

	return nil
}
