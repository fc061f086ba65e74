package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"joiefull/internal/model"
	"joiefull/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Create handles POST /api/reviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	review, err := h.service.AddReview(r.Context(), req.UserID, req.ProductID, req.Rate, req.Comment)
	if err != nil {
		// Determine appropriate status code based on error type
		status := http.StatusInternalServerError
		message := "error saving review"

		switch {
		case errors.Is(err, model.ErrInvalidRating):
			status = http.StatusBadRequest
			message = model.ErrInvalidRating.Message
		case errors.Is(err, model.ErrEmptyComment):
			status = http.StatusBadRequest
			message = model.ErrEmptyComment.Message
		case errors.Is(err, model.ErrUserNotFound):
			status = http.StatusBadRequest
			message = model.ErrUserNotFound.Message
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// Get handles GET /api/reviews?userId=&productId= requests.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, err := strconv.Atoi(r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId parameter", h.logger)
		return
	}

	productID, err := strconv.Atoi(r.URL.Query().Get("productId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid productId parameter", h.logger)
		return
	}

	review, err := h.service.GetReview(r.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "review not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve review", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, review)
}
