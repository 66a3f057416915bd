package mapping

import (
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/models"
)

// ToModelPrice converts a domain Price to a model Price
func ToModelPrice(d domain.Price) models.Price {
	return models.Price{
		PriceID:     d.PriceID,
		AssetID:     d.AssetID,
		SourceID:    d.SourceID,
		PriceDate:   d.PriceDate,
		PriceValue:  d.PriceValue,
		LastUpdated: d.LastUpdated,
	}
}

// ToDomainPrice converts a model Price to a domain Price
func ToDomainPrice(m models.Price) domain.Price {
	return domain.Price{
		PriceID:     m.PriceID,
		AssetID:     m.AssetID,
		SourceID:    m.SourceID,
		PriceDate:   m.PriceDate,
		PriceValue:  m.PriceValue,
		LastUpdated: m.LastUpdated,
	}
}

// ToModelPriceHistory converts a domain PriceHistory to a model PriceHistory
func ToModelPriceHistory(d domain.PriceHistory) models.PriceHistory {
	return models.PriceHistory{
		PriceHistoryID: d.PriceHistoryID,
		AssetID:        d.AssetID,
		SourceID:       d.SourceID,
		PriceDate:      d.PriceDate,
		PriceValue:     d.PriceValue,
		ValidFrom:      d.ValidFrom,
		ValidTo:        d.ValidTo,
	}
}

// ToDomainPriceHistory converts a model PriceHistory to a domain PriceHistory
func ToDomainPriceHistory(m models.PriceHistory) domain.PriceHistory {
	return domain.PriceHistory{
		PriceHistoryID: m.PriceHistoryID,
		AssetID:        m.AssetID,
		SourceID:       m.SourceID,
		PriceDate:      m.PriceDate,
		PriceValue:     m.PriceValue,
		ValidFrom:      m.ValidFrom,
		ValidTo:        m.ValidTo,
	}
}

// ToDomainPriceDetail converts a model PriceDetail to a domain PriceDetail
func ToDomainPriceDetail(m models.PriceDetail) domain.PriceDetail {
	return domain.PriceDetail{
		Price:       ToDomainPrice(m.Price),
		AssetName:   m.AssetName,
		AssetSymbol: m.AssetSymbol,
		SourceName:  m.SourceName,
	}
}

// ToDomainPriceDetailSlice converts a slice of model PriceDetails to domain PriceDetails
func ToDomainPriceDetailSlice(ms []models.PriceDetail) []domain.PriceDetail {
	ds := make([]domain.PriceDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPriceDetail(m)
	}
	return ds
}
