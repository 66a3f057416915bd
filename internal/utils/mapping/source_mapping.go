package mapping

import (
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/models"
)

// ToModelSource converts a domain Source to a model Source
func ToModelSource(d domain.Source) models.Source {
	return models.Source{
		SourceID: d.SourceID,
		Name:     d.Name,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainSource converts a model Source to a domain Source
func ToDomainSource(m models.Source) domain.Source {
	return domain.Source{
		SourceID: m.SourceID,
		Name:     m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainSourceSlice converts a slice of model Sources to a slice of domain Sources
func ToDomainSourceSlice(ms []models.Source) []domain.Source {
	ds := make([]domain.Source, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSource(m)
	}
	return ds
}
