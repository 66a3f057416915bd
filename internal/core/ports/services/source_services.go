package services

import (
	"context"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

// SourceReaderSvc defines read operations for source data
type SourceReaderSvc interface {
	// GetSourceByID retrieves a specific source by its ID.
	GetSourceByID(ctx context.Context, sourceID string) (*domain.Source, error)

	// GetSourceByName retrieves a specific source by its name.
	GetSourceByName(ctx context.Context, name string) (*domain.Source, error)

	// ListSources retrieves all sources.
	ListSources(ctx context.Context) ([]domain.Source, error)
}

// SourceWriterSvc defines write operations for source data
type SourceWriterSvc interface {
	// CreateSource persists a new source.
	CreateSource(ctx context.Context, req dto.CreateSourceRequest) (*domain.Source, error)

	// UpdateSource replaces the name of an existing source.
	UpdateSource(ctx context.Context, sourceID string, req dto.UpdateSourceRequest) (*domain.Source, error)

	// DeleteSource removes a source and its prices.
	DeleteSource(ctx context.Context, sourceID string) error
}

// SourceSvcFacade combines all source-related service interfaces
type SourceSvcFacade interface {
	SourceReaderSvc
	SourceWriterSvc
}
