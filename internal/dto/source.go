package dto

import (
	"time"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
)

// CreateSourceRequest defines the data needed to create a new price source.
type CreateSourceRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSourceRequest defines the data to rename an existing source.
type UpdateSourceRequest struct {
	Name string `json:"name" binding:"required"`
}

// SourceResponse defines the data returned for a source.
type SourceResponse struct {
	SourceID      string    `json:"sourceID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSourceResponse converts a domain.Source to a SourceResponse DTO
func ToSourceResponse(s *domain.Source) SourceResponse {
	return SourceResponse{
		SourceID:      s.SourceID,
		Name:          s.Name,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSourceResponse converts a slice of domain.Source to SourceResponse DTOs
func ToListSourceResponse(sources []domain.Source) []SourceResponse {
	res := make([]SourceResponse, len(sources))
	for i := range sources {
		res[i] = ToSourceResponse(&sources[i])
	}
	return res
}
