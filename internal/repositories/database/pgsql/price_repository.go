package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quantfolio/asset_price_api/internal/apperrors"
	"github.com/quantfolio/asset_price_api/internal/core/domain"
	portsrepo "github.com/quantfolio/asset_price_api/internal/core/ports/repositories"
	"github.com/quantfolio/asset_price_api/internal/models"
	"github.com/quantfolio/asset_price_api/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxPriceRepository struct {
	BaseRepository
}

// newPgxPriceRepository creates a new repository for price snapshot and history data.
func newPgxPriceRepository(pool *pgxpool.Pool) portsrepo.PriceRepositoryWithTx {
	return &PgxPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PriceRepositoryWithTx = (*PgxPriceRepository)(nil)

// FindPriceForUpdate retrieves the snapshot for a (asset, source, date) key
// inside tx. FOR UPDATE locks the row so a concurrent upsert on the same key
// blocks until this transaction commits or rolls back.
func (r *PgxPriceRepository) FindPriceForUpdate(ctx context.Context, tx pgx.Tx, assetID, sourceID string, priceDate time.Time) (*domain.Price, error) {
	query := `
		SELECT price_id, asset_id, source_id, price_date, price_value, last_updated
		FROM prices
		WHERE asset_id = $1 AND source_id = $2 AND price_date = $3
		FOR UPDATE;
	`
	var modelPrice models.Price
	err := tx.QueryRow(ctx, query, assetID, sourceID, priceDate).Scan(
		&modelPrice.PriceID,
		&modelPrice.AssetID,
		&modelPrice.SourceID,
		&modelPrice.PriceDate,
		&modelPrice.PriceValue,
		&modelPrice.LastUpdated,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price for update: %w", err)
	}

	domainPrice := mapping.ToDomainPrice(modelPrice)
	return &domainPrice, nil
}

// FindOpenHistory retrieves the currently active history interval for a key.
func (r *PgxPriceRepository) FindOpenHistory(ctx context.Context, tx pgx.Tx, assetID, sourceID string, priceDate time.Time) (*domain.PriceHistory, error) {
	query := `
		SELECT price_history_id, asset_id, source_id, price_date, price_value, valid_from, valid_to
		FROM price_histories
		WHERE asset_id = $1 AND source_id = $2 AND price_date = $3 AND valid_to IS NULL;
	`
	var modelHistory models.PriceHistory
	err := tx.QueryRow(ctx, query, assetID, sourceID, priceDate).Scan(
		&modelHistory.PriceHistoryID,
		&modelHistory.AssetID,
		&modelHistory.SourceID,
		&modelHistory.PriceDate,
		&modelHistory.PriceValue,
		&modelHistory.ValidFrom,
		&modelHistory.ValidTo,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open price history: %w", err)
	}

	domainHistory := mapping.ToDomainPriceHistory(modelHistory)
	return &domainHistory, nil
}

// InsertPrice persists a new snapshot row inside tx.
func (r *PgxPriceRepository) InsertPrice(ctx context.Context, tx pgx.Tx, price domain.Price) error {
	modelPrice := mapping.ToModelPrice(price)

	query := `
		INSERT INTO prices (price_id, asset_id, source_id, price_date, price_value, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		modelPrice.PriceID,
		modelPrice.AssetID,
		modelPrice.SourceID,
		modelPrice.PriceDate,
		modelPrice.PriceValue,
		modelPrice.LastUpdated,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation, concurrent insert on the same key
				return fmt.Errorf("%w: price for this asset, source and date already exists", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("%w: asset or source does not exist", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to insert price %s: %w", modelPrice.PriceID, err)
	}
	return nil
}

// UpdatePriceValue updates an existing snapshot's value and timestamp inside tx.
func (r *PgxPriceRepository) UpdatePriceValue(ctx context.Context, tx pgx.Tx, priceID string, value decimal.Decimal, lastUpdated time.Time) error {
	query := `
		UPDATE prices
		SET price_value = $1, last_updated = $2
		WHERE price_id = $3;
	`
	cmdTag, err := tx.Exec(ctx, query, value, lastUpdated, priceID)
	if err != nil {
		return fmt.Errorf("failed to update price %s: %w", priceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("price not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// InsertHistory persists a new history interval inside tx.
func (r *PgxPriceRepository) InsertHistory(ctx context.Context, tx pgx.Tx, history domain.PriceHistory) error {
	modelHistory := mapping.ToModelPriceHistory(history)

	query := `
		INSERT INTO price_histories (price_history_id, asset_id, source_id, price_date, price_value, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		modelHistory.PriceHistoryID,
		modelHistory.AssetID,
		modelHistory.SourceID,
		modelHistory.PriceDate,
		modelHistory.PriceValue,
		modelHistory.ValidFrom,
		modelHistory.ValidTo,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // partial unique index on open intervals
				return fmt.Errorf("%w: an open history interval already exists for this key", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("%w: asset or source does not exist", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to insert price history %s: %w", modelHistory.PriceHistoryID, err)
	}
	return nil
}

// CloseHistory stamps valid_to on an open history interval inside tx. The
// valid_to IS NULL guard keeps closed intervals immutable.
func (r *PgxPriceRepository) CloseHistory(ctx context.Context, tx pgx.Tx, priceHistoryID string, validTo time.Time) error {
	query := `
		UPDATE price_histories
		SET valid_to = $1
		WHERE price_history_id = $2 AND valid_to IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, query, validTo, priceHistoryID)
	if err != nil {
		return fmt.Errorf("failed to close price history %s: %w", priceHistoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("open price history not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// ListPrices retrieves snapshots for any of the given assets on an exact date,
// optionally filtered by source, joined with asset and source names.
func (r *PgxPriceRepository) ListPrices(ctx context.Context, assetIDs []string, priceDate time.Time, sourceID *string) ([]domain.PriceDetail, error) {
	query := `
		SELECT p.price_id, p.asset_id, a.name, a.symbol, p.source_id, s.name, p.price_date, p.price_value, p.last_updated
		FROM prices p
		JOIN assets a ON a.asset_id = p.asset_id
		JOIN sources s ON s.source_id = p.source_id
		WHERE p.price_date = $1 AND p.asset_id = ANY($2)
	`
	args := []any{priceDate, assetIDs}
	if sourceID != nil {
		query += ` AND p.source_id = $3`
		args = append(args, *sourceID)
	}
	query += ` ORDER BY a.symbol, s.name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceDetail, error) {
		var detail models.PriceDetail
		err := row.Scan(
			&detail.PriceID,
			&detail.AssetID,
			&detail.AssetName,
			&detail.AssetSymbol,
			&detail.SourceID,
			&detail.SourceName,
			&detail.PriceDate,
			&detail.PriceValue,
			&detail.LastUpdated,
		)
		return detail, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan prices: %w", err)
	}

	return mapping.ToDomainPriceDetailSlice(modelDetails), nil
}
