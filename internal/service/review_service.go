package service

import (
	"context"
	"fmt"
	"strings"

	"joiefull/internal/model"
	"joiefull/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("service", "review").Logger(),
	}
}

// AddReview upserts the (user, product) review and sets the product overlay
// rating to the submitted value. The overlay rating is the user's last
// rating, not an aggregate. Both writes share one transaction so a failed
// rating update cannot leave a review without its overlay counterpart.
func (s *reviewService) AddReview(ctx context.Context, userID, productID, rate int, comment string) (*model.Review, error) {
	if rate < 1 || rate > 5 {
		s.logger.Warn().Int("rate", rate).Msg("rejected review with out-of-range rating")
		return nil, model.ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		s.logger.Warn().Int("product_id", productID).Msg("rejected review with empty comment")
		return nil, model.ErrEmptyComment
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Msg("failed to look up reviewer")
		return nil, fmt.Errorf("error saving review: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	tx, err := s.reviewRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("error saving review: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rate:      rate,
		Comment:   comment,
	}

	if err = s.reviewRepo.Upsert(ctx, tx, review); err != nil {
		s.logger.Error().
			Err(err).
			Int("user_id", userID).
			Int("product_id", productID).
			Msg("failed to save review")
		return nil, fmt.Errorf("error saving review: %w", err)
	}

	if err = s.productRepo.UpdateRating(ctx, tx, productID, float64(rate)); err != nil {
		s.logger.Error().
			Err(err).
			Int("product_id", productID).
			Msg("failed to update overlay rating")
		return nil, fmt.Errorf("error saving review: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit review transaction")
		return nil, fmt.Errorf("error saving review: %w", err)
	}

	s.logger.Debug().
		Int("review_id", review.ID).
		Int("user_id", userID).
		Int("product_id", productID).
		Int("rate", rate).
		Msg("review saved")

	return review, nil
}

// GetReview retrieves the review for a (user, product) pair.
func (s *reviewService) GetReview(ctx context.Context, userID, productID int) (*model.Review, error) {
	review, err := s.reviewRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("user_id", userID).
			Int("product_id", productID).
			Msg("failed to get review")
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if review == nil {
		return nil, model.ErrReviewNotFound
	}

	return review, nil
}
