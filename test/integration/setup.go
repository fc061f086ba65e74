package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"joiefull/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema and seed the default user
	logger := zerolog.Nop()
	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// catalogueJSON is the fixture served by the fake remote catalogue.
const catalogueJSON = `[
	{
		"id": 10,
		"picture": {"url": "https://example.com/shirt.jpg", "description": "A green shirt"},
		"name": "Shirt",
		"category": "Tops",
		"likes": 5,
		"price": 20,
		"original_price": 25
	},
	{
		"id": 11,
		"picture": {"url": "https://example.com/jeans.jpg", "description": "Blue jeans"},
		"name": "Jeans",
		"category": "Bottoms",
		"likes": 12,
		"price": 50,
		"original_price": null
	},
	{
		"id": 12,
		"picture": {"url": "https://example.com/coat.jpg", "description": "A warm coat"},
		"name": "Coat",
		"category": "Outerwear",
		"likes": 3,
		"price": 120,
		"original_price": null
	}
]`

// StartCatalogueServer starts a fake remote catalogue serving the fixture.
func StartCatalogueServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogueJSON))
	}))
	t.Cleanup(server.Close)

	return server
}

// SeedOverlay inserts overlay rows for testing.
func SeedOverlay(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	rows := []struct {
		id       int
		favorite bool
		rate     *float64
	}{
		{10, true, nil},
		{11, false, floatPtr(4)},
	}

	for _, row := range rows {
		_, err := pool.Exec(ctx,
			"INSERT INTO product (id, favorite, rate) VALUES ($1, $2, $3)",
			row.id, row.favorite, row.rate,
		)
		if err != nil {
			t.Fatalf("failed to seed overlay row %d: %v", row.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables, keeping the seeded default user.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"review", "product", "catalogue_cache"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	if _, err := pool.Exec(ctx, "DELETE FROM users WHERE id <> 1"); err != nil {
		t.Logf("failed to clean table users: %v", err)
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
