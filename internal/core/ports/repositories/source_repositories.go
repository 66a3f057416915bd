package repositories

import (
	"context"

	"github.com/quantfolio/asset_price_api/internal/core/domain"
)

// SourceReader defines read operations for source data
type SourceReader interface {
	// FindSourceByID retrieves a specific source by its ID.
	FindSourceByID(ctx context.Context, sourceID string) (*domain.Source, error)

	// FindSourceByName retrieves a specific source by its unique name.
	FindSourceByName(ctx context.Context, name string) (*domain.Source, error)

	// ListSources retrieves all sources.
	ListSources(ctx context.Context) ([]domain.Source, error)
}

// SourceWriter defines write operations for source data
type SourceWriter interface {
	// SaveSource persists a new source.
	SaveSource(ctx context.Context, source domain.Source) error

	// UpdateSource replaces the name of an existing source.
	UpdateSource(ctx context.Context, source domain.Source) error

	// DeleteSource removes a source by ID, cascading to its prices.
	DeleteSource(ctx context.Context, sourceID string) error
}

// SourceRepositoryFacade combines all source-related repository interfaces
type SourceRepositoryFacade interface {
	SourceReader
	SourceWriter
}
