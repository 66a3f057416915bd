package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	"github.com/quantfolio/asset_price_api/internal/models"
	"github.com/quantfolio/asset_price_api/internal/utils/mapping"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

// SaveAsset inserts a new asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	modelAsset := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (asset_id, name, symbol, isin, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAsset.AssetID,
		modelAsset.Name,
		modelAsset.Symbol,
		modelAsset.ISIN,
		modelAsset.CreatedAt,
		modelAsset.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: asset with the same symbol or ISIN already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save asset %s: %w", modelAsset.AssetID, err)
	}
	return nil
}

// UpdateAsset replaces the mutable fields of an existing asset.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	modelAsset := mapping.ToModelAsset(asset)

	query := `
		UPDATE assets
		SET name = $1, symbol = $2, isin = $3, last_updated_at = $4
		WHERE asset_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAsset.Name,
		modelAsset.Symbol,
		modelAsset.ISIN,
		modelAsset.LastUpdatedAt,
		modelAsset.AssetID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: asset with the same symbol or ISIN already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update asset query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("asset not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	return r.findAsset(ctx, `WHERE asset_id = $1`, assetID)
}

// FindAssetBySymbol retrieves an asset by its unique trading symbol.
func (r *PgxAssetRepository) FindAssetBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	return r.findAsset(ctx, `WHERE symbol = $1`, symbol)
}

// FindAssetByISIN retrieves an asset by its unique ISIN code.
func (r *PgxAssetRepository) FindAssetByISIN(ctx context.Context, isin string) (*domain.Asset, error) {
	return r.findAsset(ctx, `WHERE isin = $1`, isin)
}

func (r *PgxAssetRepository) findAsset(ctx context.Context, where string, arg any) (*domain.Asset, error) {
	query := `
		SELECT asset_id, name, symbol, isin, created_at, last_updated_at
		FROM assets
	` + where + `;`

	var modelAsset models.Asset
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelAsset.AssetID,
		&modelAsset.Name,
		&modelAsset.Symbol,
		&modelAsset.ISIN,
		&modelAsset.CreatedAt,
		&modelAsset.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	domainAsset := mapping.ToDomainAsset(modelAsset)
	return &domainAsset, nil
}

// ListAssets retrieves all assets ordered by symbol.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `
		SELECT asset_id, name, symbol, isin, created_at, last_updated_at
		FROM assets
		ORDER BY symbol;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	modelAssets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Asset, error) {
		var asset models.Asset
		err := row.Scan(
			&asset.AssetID,
			&asset.Name,
			&asset.Symbol,
			&asset.ISIN,
			&asset.CreatedAt,
			&asset.LastUpdatedAt,
		)
		return asset, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}

	return mapping.ToDomainAssetSlice(modelAssets), nil
}
