package router

import (
	"net/http"
	"strings"

	"joiefull/internal/handler"
	"joiefull/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	userHandler *handler.UserHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Favorite toggle lives under the product resource
		if strings.HasSuffix(r.URL.Path, "/favorite") {
			productHandler.ToggleFavorite(w, r)
			return
		}

		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Review handler function
	reviewRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			reviewHandler.Create(w, r)
			return
		}
		reviewHandler.Get(w, r)
	}

	mux.HandleFunc("/api/reviews", reviewRouteHandler)
	mux.HandleFunc("/api/reviews/", reviewRouteHandler)

	// User handler function
	userRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/users" || r.URL.Path == "/api/users/") {
			userHandler.Create(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/users/") && r.URL.Path != "/api/users/" {
			userHandler.GetByID(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/users", userRouteHandler)
	mux.HandleFunc("/api/users/", userRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
