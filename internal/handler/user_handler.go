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

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// GetByID handles GET /api/users/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/users/{id}
	path := r.URL.Path
	if len(path) < len("/api/users/") {
		writeError(w, http.StatusBadRequest, "user ID is required", h.logger)
		return
	}
	idStr := path[len("/api/users/"):]

	if idStr == "" {
		writeError(w, http.StatusBadRequest, "user ID is required", h.logger)
		return
	}

	userID, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID format", h.logger)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Create(r.Context(), req.Name, req.Picture)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == model.ErrCodeMissingField {
			writeError(w, http.StatusBadRequest, domainErr.Message, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
