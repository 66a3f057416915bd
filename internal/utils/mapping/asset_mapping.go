package mapping

import (
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID: d.AssetID,
		Name:    d.Name,
		Symbol:  d.Symbol,
		ISIN:    d.ISIN,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID: m.AssetID,
		Name:    m.Name,
		Symbol:  m.Symbol,
		ISIN:    m.ISIN,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
