package catalogue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogueJSON = `[
	{
		"id": 1,
		"picture": {"url": "https://example.com/shirt.jpg", "description": "A green shirt"},
		"name": "Shirt",
		"category": "Tops",
		"likes": 5,
		"price": 20,
		"original_price": 25
	},
	{
		"id": 2,
		"picture": {"url": "https://example.com/jeans.jpg", "description": "Blue jeans"},
		"name": "Jeans",
		"category": "Bottoms",
		"likes": 12,
		"price": 50,
		"original_price": null
	}
]`

func TestHTTPSource_Fetch(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clothes.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogueJSON))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, logger)

	products, err := source.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Shirt", products[0].Name)
	assert.Equal(t, "Tops", products[0].Category)
	assert.Equal(t, "https://example.com/shirt.jpg", products[0].Picture.URL)
	assert.Equal(t, 5, products[0].Likes)
	assert.Equal(t, 20.0, products[0].Price)
	require.NotNil(t, products[0].OriginalPrice)
	assert.Equal(t, 25.0, *products[0].OriginalPrice)

	assert.Equal(t, 2, products[1].ID)
	assert.Nil(t, products[1].OriginalPrice)
}

func TestHTTPSource_Fetch_NonSuccessStatus(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, logger)

	products, err := source.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "status 404")
}

func TestHTTPSource_Fetch_MalformedBody(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, 5*time.Second, logger)

	products, err := source.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
}

func TestHTTPSource_Fetch_ServerUnreachable(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	source := NewHTTPSource(server.URL, 1*time.Second, logger)

	products, err := source.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, products)
}
