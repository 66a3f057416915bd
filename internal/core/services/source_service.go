package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

type sourceService struct {
	sourceRepo portsrepo.SourceRepositoryFacade
}

// NewSourceService creates the price source reference data service.
func NewSourceService(sourceRepo portsrepo.SourceRepositoryFacade) portssvc.SourceSvcFacade {
	return &sourceService{sourceRepo: sourceRepo}
}

var _ portssvc.SourceSvcFacade = (*sourceService)(nil)

func (s *sourceService) CreateSource(ctx context.Context, req dto.CreateSourceRequest) (*domain.Source, error) {
	now := time.Now().UTC()

	source := domain.Source{
		SourceID: uuid.NewString(),
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.sourceRepo.SaveSource(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to create source in service: %w", err)
	}

	return &source, nil
}

func (s *sourceService) UpdateSource(ctx context.Context, sourceID string, req dto.UpdateSourceRequest) (*domain.Source, error) {
	existing, err := s.sourceRepo.FindSourceByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find source for update: %w", err)
	}

	existing.Name = req.Name
	existing.LastUpdatedAt = time.Now().UTC()

	if err := s.sourceRepo.UpdateSource(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update source in service: %w", err)
	}

	return existing, nil
}

func (s *sourceService) DeleteSource(ctx context.Context, sourceID string) error {
	if err := s.sourceRepo.DeleteSource(ctx, sourceID); err != nil {
		return fmt.Errorf("failed to delete source in service: %w", err)
	}
	return nil
}

func (s *sourceService) GetSourceByID(ctx context.Context, sourceID string) (*domain.Source, error) {
	source, err := s.sourceRepo.FindSourceByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get source by id in service: %w", err)
	}
	return source, nil
}

func (s *sourceService) GetSourceByName(ctx context.Context, name string) (*domain.Source, error) {
	source, err := s.sourceRepo.FindSourceByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get source by name in service: %w", err)
	}
	return source, nil
}

func (s *sourceService) ListSources(ctx context.Context) ([]domain.Source, error) {
	sources, err := s.sourceRepo.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in service: %w", err)
	}
	// Return empty slice if no sources found, not nil
	if sources == nil {
		return []domain.Source{}, nil
	}
	return sources, nil
}
