package integration

import (
	"context"
	"testing"

	"joiefull/internal/model"
	"joiefull/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded overlay rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedOverlay(t, testDB.Pool)

		infos, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, 10, infos[0].ID)
		assert.True(t, infos[0].Favorite)
		assert.Nil(t, infos[0].Rate)
		require.NotNil(t, infos[1].Rate)
		assert.Equal(t, 4.0, *infos[1].Rate)
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		info, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("BackfillDefaults skips existing rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedOverlay(t, testDB.Pool)

		err := repo.BackfillDefaults(ctx, []int{10, 11, 12})
		require.NoError(t, err)

		// Seeded state survives the backfill
		info, err := repo.GetByID(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.True(t, info.Favorite)

		// New id gets the defaults
		info, err = repo.GetByID(ctx, 12)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.False(t, info.Favorite)
		assert.Nil(t, info.Rate)
	})

	t.Run("ToggleFavorite creates missing row as favorite", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		info, err := repo.ToggleFavorite(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, 42, info.ID)
		assert.True(t, info.Favorite)
	})

	t.Run("ToggleFavorite twice restores the initial value", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		first, err := repo.ToggleFavorite(ctx, 42)
		require.NoError(t, err)
		assert.True(t, first.Favorite)

		second, err := repo.ToggleFavorite(ctx, 42)
		require.NoError(t, err)
		assert.False(t, second.Favorite)
	})

	t.Run("ToggleFavorite preserves the rating", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedOverlay(t, testDB.Pool)

		info, err := repo.ToggleFavorite(ctx, 11)
		require.NoError(t, err)
		assert.True(t, info.Favorite)
		require.NotNil(t, info.Rate)
		assert.Equal(t, 4.0, *info.Rate)
	})

	t.Run("UpdateRating upserts within a transaction", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := testDB.Pool.Begin(ctx)
		require.NoError(t, err)

		err = repo.UpdateRating(ctx, tx, 42, 3)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		info, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, info)
		require.NotNil(t, info.Rate)
		assert.Equal(t, 3.0, *info.Rate)
		assert.False(t, info.Favorite)
	})
}

func TestReviewRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewReviewRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Upsert inserts and replaces on the same pair", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		first := &model.Review{UserID: 1, ProductID: 10, Rate: 3, Comment: "fine"}
		require.NoError(t, repo.Upsert(ctx, tx, first))
		require.NoError(t, tx.Commit(ctx))
		assert.NotZero(t, first.ID)

		tx, err = repo.BeginTx(ctx)
		require.NoError(t, err)

		second := &model.Review{UserID: 1, ProductID: 10, Rate: 5, Comment: "great after all"}
		require.NoError(t, repo.Upsert(ctx, tx, second))
		require.NoError(t, tx.Commit(ctx))
		assert.Equal(t, first.ID, second.ID)

		stored, err := repo.GetByUserAndProduct(ctx, 1, 10)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 5, stored.Rate)
		assert.Equal(t, "great after all", stored.Comment)
	})

	t.Run("GetByUserAndProduct returns nil when absent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		stored, err := repo.GetByUserAndProduct(ctx, 1, 999)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("Rollback discards the review", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		review := &model.Review{UserID: 1, ProductID: 10, Rate: 3, Comment: "fine"}
		require.NoError(t, repo.Upsert(ctx, tx, review))
		require.NoError(t, tx.Rollback(ctx))

		stored, err := repo.GetByUserAndProduct(ctx, 1, 10)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewUserRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Default user is seeded", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Jocelyn Testing", user.Name)
	})

	t.Run("Create fills in a generated id", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		user := &model.User{Name: "New User", Picture: "https://example.com/avatar.jpg"}
		require.NoError(t, repo.Create(ctx, user))
		assert.Greater(t, user.ID, 1)

		stored, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "New User", stored.Name)
	})
}

func TestCatalogueCacheRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCatalogueCacheRepository(testDB.Pool, logger)

	ctx := context.Background()

	snapshot := []model.CatalogueProduct{
		{ID: 12, Name: "Coat", Category: "Outerwear", Likes: 3, Price: 120},
		{ID: 10, Name: "Shirt", Category: "Tops", Likes: 5, Price: 20, OriginalPrice: floatPtr(25)},
		{ID: 11, Name: "Jeans", Category: "Bottoms", Likes: 12, Price: 50},
	}

	t.Run("ReplaceAll preserves fetch order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.ReplaceAll(ctx, snapshot))

		cached, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, cached, 3)
		assert.Equal(t, 12, cached[0].ID)
		assert.Equal(t, 10, cached[1].ID)
		assert.Equal(t, 11, cached[2].ID)
		require.NotNil(t, cached[1].OriginalPrice)
		assert.Equal(t, 25.0, *cached[1].OriginalPrice)
	})

	t.Run("ReplaceAll drops rows missing from the new snapshot", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.ReplaceAll(ctx, snapshot))
		require.NoError(t, repo.ReplaceAll(ctx, snapshot[:1]))

		cached, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, cached, 1)
		assert.Equal(t, 12, cached[0].ID)
	})

	t.Run("GetAll returns empty cache as no rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		cached, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, cached)
	})
}
