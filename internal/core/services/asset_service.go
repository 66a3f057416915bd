package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

type assetService struct {
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates the asset reference data service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	now := time.Now().UTC()

	asset := domain.Asset{
		AssetID: uuid.NewString(),
		Name:    req.Name,
		Symbol:  strings.ToUpper(req.Symbol),
		ISIN:    strings.ToUpper(req.ISIN),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset in service: %w", err)
	}

	return &asset, nil
}

// UpdateAsset performs a full replace of the asset's mutable fields.
// Identity and creation time are preserved.
func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	existing, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for update: %w", err)
	}

	existing.Name = req.Name
	existing.Symbol = strings.ToUpper(req.Symbol)
	existing.ISIN = strings.ToUpper(req.ISIN)
	existing.LastUpdatedAt = time.Now().UTC()

	if err := s.assetRepo.UpdateAsset(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update asset in service: %w", err)
	}

	return existing, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by id in service: %w", err)
	}
	return asset, nil
}

func (s *assetService) GetAssetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetBySymbol(ctx, strings.ToUpper(symbol))
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by symbol in service: %w", err)
	}
	return asset, nil
}

func (s *assetService) GetAssetByISIN(ctx context.Context, isin string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByISIN(ctx, strings.ToUpper(isin))
	if err != nil {
		return nil, fmt.Errorf("failed to get asset by isin in service: %w", err)
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets in service: %w", err)
	}
	// Return empty slice if no assets found, not nil
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}
