package repository

import (
	"context"
	"fmt"

	"joiefull/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogueCacheRepository implements the CatalogueCacheRepository interface
// using PostgreSQL.
type catalogueCacheRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogueCacheRepository creates a new PostgreSQL-backed catalogue cache repository.
func NewCatalogueCacheRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogueCacheRepository {
	return &catalogueCacheRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalogue_cache").Logger(),
	}
}

// GetAll retrieves the cached catalogue, preserving the order of the fetch
// that populated it.
func (r *catalogueCacheRepository) GetAll(ctx context.Context) ([]model.CatalogueProduct, error) {
	query := `
		SELECT id, picture_url, picture_description, name, category, likes, price, original_price
		FROM catalogue_cache
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query catalogue cache")
		return nil, fmt.Errorf("failed to query catalogue cache: %w", err)
	}
	defer rows.Close()

	var products []model.CatalogueProduct
	for rows.Next() {
		var p model.CatalogueProduct
		err := rows.Scan(
			&p.ID,
			&p.Picture.URL,
			&p.Picture.Description,
			&p.Name,
			&p.Category,
			&p.Likes,
			&p.Price,
			&p.OriginalPrice,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cached catalogue row")
			return nil, fmt.Errorf("failed to scan cached catalogue row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cached catalogue rows")
		return nil, fmt.Errorf("error iterating cached catalogue rows: %w", err)
	}

	return products, nil
}

// ReplaceAll swaps the cached catalogue for the given snapshot in one
// transaction, so readers never observe a partially written cache.
func (r *catalogueCacheRepository) ReplaceAll(ctx context.Context, products []model.CatalogueProduct) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalogue_cache`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear catalogue cache")
		return fmt.Errorf("failed to clear catalogue cache: %w", err)
	}

	query := `
		INSERT INTO catalogue_cache (id, position, picture_url, picture_description, name, category, likes, price, original_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for i, p := range products {
		batch.Queue(query,
			p.ID,
			i,
			p.Picture.URL,
			p.Picture.Description,
			p.Name,
			p.Category,
			p.Likes,
			p.Price,
			p.OriginalPrice,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range products {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().Err(err).Int("count", len(products)).Msg("failed to write catalogue cache")
			return fmt.Errorf("failed to write catalogue cache: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to flush catalogue cache batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit catalogue cache")
		return fmt.Errorf("failed to commit catalogue cache: %w", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("catalogue cache replaced")

	return nil
}
