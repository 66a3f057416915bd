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

type PgxSourceRepository struct {
	BaseRepository
}

// newPgxSourceRepository creates a new repository for price source data.
func newPgxSourceRepository(pool *pgxpool.Pool) portsrepo.SourceRepositoryFacade {
	return &PgxSourceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SourceRepositoryFacade = (*PgxSourceRepository)(nil)

// SaveSource inserts a new source.
func (r *PgxSourceRepository) SaveSource(ctx context.Context, source domain.Source) error {
	modelSource := mapping.ToModelSource(source)

	query := `
		INSERT INTO sources (source_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSource.SourceID,
		modelSource.Name,
		modelSource.CreatedAt,
		modelSource.LastUpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: source with name %q already exists", apperrors.ErrDuplicate, modelSource.Name)
		}
		return fmt.Errorf("failed to save source %s: %w", modelSource.SourceID, err)
	}
	return nil
}

// UpdateSource renames an existing source.
func (r *PgxSourceRepository) UpdateSource(ctx context.Context, source domain.Source) error {
	modelSource := mapping.ToModelSource(source)

	query := `
		UPDATE sources
		SET name = $1, last_updated_at = $2
		WHERE source_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelSource.Name,
		modelSource.LastUpdatedAt,
		modelSource.SourceID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: source with name %q already exists", apperrors.ErrDuplicate, modelSource.Name)
		}
		return fmt.Errorf("failed to execute update source query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("source not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteSource removes a source by ID. The schema cascades the delete to
// the source's prices and history rows.
func (r *PgxSourceRepository) DeleteSource(ctx context.Context, sourceID string) error {
	query := `DELETE FROM sources WHERE source_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, sourceID)
	if err != nil {
		return fmt.Errorf("failed to execute delete source query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("source not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// FindSourceByID retrieves a source by its ID.
func (r *PgxSourceRepository) FindSourceByID(ctx context.Context, sourceID string) (*domain.Source, error) {
	return r.findSource(ctx, `WHERE source_id = $1`, sourceID)
}

// FindSourceByName retrieves a source by its unique name.
func (r *PgxSourceRepository) FindSourceByName(ctx context.Context, name string) (*domain.Source, error) {
	return r.findSource(ctx, `WHERE name = $1`, name)
}

func (r *PgxSourceRepository) findSource(ctx context.Context, where string, arg any) (*domain.Source, error) {
	query := `
		SELECT source_id, name, created_at, last_updated_at
		FROM sources
	` + where + `;`

	var modelSource models.Source
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelSource.SourceID,
		&modelSource.Name,
		&modelSource.CreatedAt,
		&modelSource.LastUpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find source: %w", err)
	}

	domainSource := mapping.ToDomainSource(modelSource)
	return &domainSource, nil
}

// ListSources retrieves all sources ordered by name.
func (r *PgxSourceRepository) ListSources(ctx context.Context) ([]domain.Source, error) {
	query := `
		SELECT source_id, name, created_at, last_updated_at
		FROM sources
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer rows.Close()

	modelSources, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Source, error) {
		var source models.Source
		err := row.Scan(
			&source.SourceID,
			&source.Name,
			&source.CreatedAt,
			&source.LastUpdatedAt,
		)
		return source, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan sources: %w", err)
	}

	return mapping.ToDomainSourceSlice(modelSources), nil
}
