package database

import (
	"context"
	"fmt"
	"time"

	"joiefull/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure pool settings
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// Schema is the full database schema. The product table is the per-user
// overlay keyed by the remote catalogue id; catalogue_cache holds the
// last-known catalogue snapshot consulted when the remote source is down.
const Schema = `
	CREATE TABLE IF NOT EXISTS product (
		id INT PRIMARY KEY,
		favorite BOOLEAN NOT NULL DEFAULT FALSE,
		rate DOUBLE PRECISION
	);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		picture TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS review (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		product_id INT NOT NULL,
		rate INT NOT NULL,
		comment TEXT NOT NULL,
		UNIQUE (user_id, product_id)
	);

	CREATE TABLE IF NOT EXISTS catalogue_cache (
		id INT PRIMARY KEY,
		position INT NOT NULL DEFAULT 0,
		picture_url TEXT NOT NULL DEFAULT '',
		picture_description TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		likes INT NOT NULL DEFAULT 0,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		original_price DOUBLE PRECISION,
		fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// seedUser matches the default reviewer the mobile application creates on
// first launch, so clients without a session can submit reviews as user 1.
const seedUser = `
	INSERT INTO users (id, name, picture)
	VALUES (1, 'Jocelyn Testing', 'https://static.wikia.nocookie.net/espritscriminels/images/c/c5/Reid_S9.jpg/revision/latest/scale-to-width-down/250?cb=20140830121341&path-prefix=fr')
	ON CONFLICT (id) DO NOTHING;

	SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1));
`

// Migrate creates the schema and seeds the default user.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := pool.Exec(ctx, seedUser); err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	logger.Info().Msg("database schema migrated")

	return nil
}
