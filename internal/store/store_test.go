package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/core/asset/mocks"
	"github.com/goto/assetkeeper/internal/store"
	"github.com/goto/assetkeeper/internal/store/sqlite"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a ready to use sqlite store", func(t *testing.T) {
		cfg := store.Config{
			Driver: store.DriverSQLite,
			SQLite: sqlite.Config{Path: filepath.Join(t.TempDir(), "inventory.db")},
		}

		repo, err := store.Open(ctx, cfg, log.NewNoop())
		require.NoError(t, err)
		defer repo.Close()

		require.NoError(t, repo.InsertAsset(ctx, asset.Stored{ID: "1", Name: "Camera", StorageLocation: "Shelf"}))
		listings, err := repo.ListAssets(ctx)
		require.NoError(t, err)
		assert.Len(t, listings, 1)
	})

	t.Run("opens the memory store", func(t *testing.T) {
		repo, err := store.Open(ctx, store.Config{Driver: store.DriverMemory, Timeout: time.Second}, log.NewNoop())
		require.NoError(t, err)

		listings, err := repo.ListAssets(ctx)
		assert.NoError(t, err)
		assert.Empty(t, listings)
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		_, err := store.Open(ctx, store.Config{Driver: "oracle"}, log.NewNoop())
		assert.EqualError(t, err, `store.driver: error value "oracle" not recognized, only support "sqlite postgres memory"`)

		_, err = store.Init(ctx, store.Config{Driver: "oracle"}, log.NewNoop())
		assert.Error(t, err)
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")

	msg, err := store.Init(context.Background(), store.Config{SQLite: sqlite.Config{Path: path}}, log.NewNoop())

	require.NoError(t, err)
	assert.Equal(t, "created database "+path, msg)
}

func TestWithTimeout(t *testing.T) {
	t.Run("bounds every call with a deadline", func(t *testing.T) {
		repo := mocks.NewAssetRepository(t)
		repo.EXPECT().DeleteLoan(mock.Anything, "1").
			Run(func(ctx context.Context, assetID string) {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			}).
			Return(nil)

		err := store.WithTimeout(repo, time.Minute).DeleteLoan(context.Background(), "1")

		assert.NoError(t, err)
	})

	t.Run("passes errors through untouched", func(t *testing.T) {
		boom := errors.New("boom")
		repo := mocks.NewAssetRepository(t)
		repo.EXPECT().FindAsset(mock.Anything, "1").Return(asset.Stored{}, boom)

		_, err := store.WithTimeout(repo, time.Minute).FindAsset(context.Background(), "1")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("a zero duration leaves the repository as is", func(t *testing.T) {
		repo := mocks.NewAssetRepository(t)

		assert.Same(t, repo, store.WithTimeout(repo, 0))
	})
}
