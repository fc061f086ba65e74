package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"joiefull/internal/model"
	"joiefull/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogueService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogueService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	products, err := h.service.GetProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ToggleFavorite handles POST /api/products/{id}/favorite requests.
func (h *ProductHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	info, err := h.service.ToggleFavorite(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "unable to set favorite", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// productIDFromPath extracts the product id from /api/products/{id}[/favorite].
func (h *ProductHandler) productIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	path := strings.TrimPrefix(r.URL.Path, "/api/products/")
	idStr := strings.SplitN(path, "/", 2)[0]

	if idStr == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return 0, false
	}

	productID, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return 0, false
	}

	return productID, true
}
