package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"joiefull/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogueService is a mock implementation of CatalogueService.
type MockCatalogueService struct {
	mock.Mock
}

func (m *MockCatalogueService) GetProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogueService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogueService) ToggleFavorite(ctx context.Context, id int) (*model.ProductLocalInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductLocalInfo), args.Error(1)
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: 1, Name: "Shirt", Category: "Tops", Price: 20, Likes: 5},
		{ID: 2, Name: "Jeans", Category: "Bottoms", Price: 50, Likes: 12, Favorite: true},
	}

	tests := []struct {
		name           string
		method         string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodGet,
			mockReturn:     testProducts,
			mockError:      nil,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			mockReturn:     nil,
			mockError:      errors.New("overlay store down"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogueService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetProducts", mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/products", nil)
			w := httptest.NewRecorder()

			handler.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: 42, Name: "Coat", Category: "Outerwear", Price: 120}

	tests := []struct {
		name           string
		path           string
		mockID         int
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/products/42",
			mockID:         42,
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/products/99",
			mockID:         99,
			mockReturn:     nil,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Service error",
			path:           "/api/products/42",
			mockID:         42,
			mockReturn:     nil,
			mockError:      errors.New("overlay store down"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Invalid id format",
			path:           "/api/products/not-a-number",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogueService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetProduct", mock.Anything, tt.mockID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ToggleFavorite(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		path           string
		mockID         int
		mockReturn     *model.ProductLocalInfo
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			path:           "/api/products/7/favorite",
			mockID:         7,
			mockReturn:     &model.ProductLocalInfo{ID: 7, Favorite: true},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Store error",
			method:         http.MethodPost,
			path:           "/api/products/7/favorite",
			mockID:         7,
			mockReturn:     nil,
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			path:           "/api/products/7/favorite",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogueService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("ToggleFavorite", mock.Anything, tt.mockID).Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ToggleFavorite(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
