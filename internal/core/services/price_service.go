package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	portssvc "github.com/quantfolio/asset_price_api/internal/core/ports/services"
	"github.com/quantfolio/asset_price_api/internal/dto"
)

type priceService struct {
	priceRepo portsrepo.PriceRepositoryWithTx
}

// NewPriceService creates the price upsert and query service.
func NewPriceService(priceRepo portsrepo.PriceRepositoryWithTx) portssvc.PriceSvcFacade {
	return &priceService{priceRepo: priceRepo}
}

var _ portssvc.PriceSvcFacade = (*priceService)(nil)

// SetPrice inserts or updates the snapshot for a (asset, source, date) key
// and maintains the history audit trail:
//   - no snapshot yet: insert the snapshot and open a history interval
//   - value unchanged: no writes, LastUpdated stays as it was
//   - value changed: close the open interval, open a new one, update the snapshot
//
// The whole sequence runs in one transaction; the snapshot read takes a row
// lock, so concurrent upserts on the same key serialize instead of racing.
func (s *priceService) SetPrice(ctx context.Context, req dto.SetPriceRequest) error {
	priceDate, err := time.Parse(dto.DateLayout, req.PriceDate)
	if err != nil {
		return fmt.Errorf("%w: invalid price date %q", apperrors.ErrValidation, req.PriceDate)
	}
	now := time.Now().UTC()

	tx, err := s.priceRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin price upsert: %w", err)
	}
	// Ignored if the transaction commits.
	defer s.priceRepo.Rollback(ctx, tx)

	existing, err := s.priceRepo.FindPriceForUpdate(ctx, tx, req.AssetID, req.SourceID, priceDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to read price snapshot: %w", err)
	}

	switch {
	case existing == nil:
		price := domain.Price{
			PriceID:     uuid.NewString(),
			AssetID:     req.AssetID,
			SourceID:    req.SourceID,
			PriceDate:   priceDate,
			PriceValue:  req.PriceValue,
			LastUpdated: now,
		}
		if err := s.priceRepo.InsertPrice(ctx, tx, price); err != nil {
			return err
		}
		if err := s.priceRepo.InsertHistory(ctx, tx, openHistory(req, priceDate, now)); err != nil {
			return err
		}

	case existing.PriceValue.Equal(req.PriceValue):
		// Idempotent write: nothing to record, release the row lock.
		return s.priceRepo.Commit(ctx, tx)

	default:
		open, err := s.priceRepo.FindOpenHistory(ctx, tx, req.AssetID, req.SourceID, priceDate)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to read open price history: %w", err)
		}
		if open != nil {
			if err := s.priceRepo.CloseHistory(ctx, tx, open.PriceHistoryID, now); err != nil {
				return err
			}
		}
		if err := s.priceRepo.InsertHistory(ctx, tx, openHistory(req, priceDate, now)); err != nil {
			return err
		}
		if err := s.priceRepo.UpdatePriceValue(ctx, tx, existing.PriceID, req.PriceValue, now); err != nil {
			return err
		}
	}

	return s.priceRepo.Commit(ctx, tx)
}

// openHistory builds the new active history interval for an upsert.
func openHistory(req dto.SetPriceRequest, priceDate, validFrom time.Time) domain.PriceHistory {
	return domain.PriceHistory{
		PriceHistoryID: uuid.NewString(),
		AssetID:        req.AssetID,
		SourceID:       req.SourceID,
		PriceDate:      priceDate,
		PriceValue:     req.PriceValue,
		ValidFrom:      validFrom,
		ValidTo:        nil,
	}
}

func (s *priceService) GetPrices(ctx context.Context, assetIDs []string, priceDate time.Time, sourceID *string) ([]domain.PriceDetail, error) {
	prices, err := s.priceRepo.ListPrices(ctx, assetIDs, priceDate, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices in service: %w", err)
	}
	// Return empty slice if no prices found, not nil
	if prices == nil {
		return []domain.PriceDetail{}, nil
	}
	return prices, nil
}

func (s *priceService) GetPrice(ctx context.Context, assetID string, priceDate time.Time, sourceID *string) (*domain.PriceDetail, error) {
	prices, err := s.priceRepo.ListPrices(ctx, []string{assetID}, priceDate, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price in service: %w", err)
	}
	if len(prices) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &prices[0], nil
}
