package repository

import (
	"context"
	"fmt"

	"joiefull/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *reviewRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetByUserAndProduct retrieves the review for a (user, product) pair.
func (r *reviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID int) (*model.Review, error) {
	query := `
		SELECT id, user_id, product_id, rate, comment
		FROM review
		WHERE user_id = $1 AND product_id = $2
	`

	var review model.Review
	err := r.pool.QueryRow(ctx, query, userID, productID).
		Scan(&review.ID, &review.UserID, &review.ProductID, &review.Rate, &review.Comment)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().
				Int("user_id", userID).
				Int("product_id", productID).
				Msg("review not found")
			return nil, nil
		}
		r.logger.Error().
			Err(err).
			Int("user_id", userID).
			Int("product_id", productID).
			Msg("failed to query review")
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return &review, nil
}

// Upsert inserts the review or replaces the rating and comment of the
// existing one for the same (user, product) pair.
func (r *reviewRepository) Upsert(ctx context.Context, tx pgx.Tx, review *model.Review) error {
	query := `
		INSERT INTO review (user_id, product_id, rate, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id) DO UPDATE SET rate = EXCLUDED.rate, comment = EXCLUDED.comment
		RETURNING id
	`

	err := tx.QueryRow(ctx, query, review.UserID, review.ProductID, review.Rate, review.Comment).
		Scan(&review.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("user_id", review.UserID).
			Int("product_id", review.ProductID).
			Msg("failed to upsert review")
		return fmt.Errorf("failed to upsert review: %w", err)
	}

	r.logger.Debug().
		Int("review_id", review.ID).
		Int("user_id", review.UserID).
		Int("product_id", review.ProductID).
		Msg("review upserted")

	return nil
}
