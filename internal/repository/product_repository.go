package repository

import (
	"context"
	"fmt"

	"joiefull/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product overlay repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves every overlay row.
func (r *productRepository) GetAll(ctx context.Context) ([]model.ProductLocalInfo, error) {
	query := `
		SELECT id, favorite, rate
		FROM product
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query overlay rows")
		return nil, fmt.Errorf("failed to query overlay rows: %w", err)
	}
	defer rows.Close()

	var infos []model.ProductLocalInfo
	for rows.Next() {
		var info model.ProductLocalInfo
		err := rows.Scan(&info.ID, &info.Favorite, &info.Rate)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan overlay row")
			return nil, fmt.Errorf("failed to scan overlay row: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating overlay rows")
		return nil, fmt.Errorf("error iterating overlay rows: %w", err)
	}

	return infos, nil
}

// GetByID retrieves a single overlay row by product id.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.ProductLocalInfo, error) {
	query := `
		SELECT id, favorite, rate
		FROM product
		WHERE id = $1
	`

	var info model.ProductLocalInfo
	err := r.pool.QueryRow(ctx, query, id).Scan(&info.ID, &info.Favorite, &info.Rate)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("overlay row not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query overlay row")
		return nil, fmt.Errorf("failed to query overlay row: %w", err)
	}

	return &info, nil
}

// Upsert inserts or replaces an overlay row.
func (r *productRepository) Upsert(ctx context.Context, info model.ProductLocalInfo) error {
	query := `
		INSERT INTO product (id, favorite, rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET favorite = EXCLUDED.favorite, rate = EXCLUDED.rate
	`

	_, err := r.pool.Exec(ctx, query, info.ID, info.Favorite, info.Rate)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", info.ID).Msg("failed to upsert overlay row")
		return fmt.Errorf("failed to upsert overlay row: %w", err)
	}

	return nil
}

// BackfillDefaults inserts default overlay rows for ids not seen before.
// Existing rows are left untouched.
func (r *productRepository) BackfillDefaults(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		INSERT INTO product (id, favorite, rate)
		VALUES ($1, FALSE, NULL)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to backfill overlay rows")
			return fmt.Errorf("failed to backfill overlay rows: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(ids)).Msg("overlay rows backfilled")

	return nil
}

// ToggleFavorite flips the favorite flag in a single statement so that two
// concurrent toggles cannot lose an update. A missing row is created with
// favorite=true, matching upsert semantics.
func (r *productRepository) ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error) {
	query := `
		INSERT INTO product (id, favorite, rate)
		VALUES ($1, TRUE, NULL)
		ON CONFLICT (id) DO UPDATE SET favorite = NOT product.favorite
		RETURNING id, favorite, rate
	`

	var info model.ProductLocalInfo
	err := r.pool.QueryRow(ctx, query, id).Scan(&info.ID, &info.Favorite, &info.Rate)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to toggle favorite")
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	r.logger.Debug().
		Int("product_id", id).
		Bool("favorite", info.Favorite).
		Msg("favorite toggled")

	return &info, nil
}

// UpdateRating sets the overlay rating within the provided transaction.
func (r *productRepository) UpdateRating(ctx context.Context, tx pgx.Tx, id int, rate float64) error {
	query := `
		INSERT INTO product (id, favorite, rate)
		VALUES ($1, FALSE, $2)
		ON CONFLICT (id) DO UPDATE SET rate = EXCLUDED.rate
	`

	_, err := tx.Exec(ctx, query, id, rate)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("product_id", id).
			Float64("rate", rate).
			Msg("failed to update overlay rating")
		return fmt.Errorf("failed to update overlay rating: %w", err)
	}

	return nil
}
