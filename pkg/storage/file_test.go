package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardstore/pkg/storage"
)

func TestNewFileBackend(t *testing.T) {
	t.Run("creates base directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "records")

		_, err := storage.NewFileBackend(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("rejects empty base directory", func(t *testing.T) {
		_, err := storage.NewFileBackend("")
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
	})
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)

	t.Run("read missing record", func(t *testing.T) {
		_, exists, err := backend.Read(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("write then read round trip", func(t *testing.T) {
		require.NoError(t, backend.Write(ctx, "settings", `{"theme":"dark"}`))

		value, exists, err := backend.Read(ctx, "settings")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, `{"theme":"dark"}`, value)
	})

	t.Run("record lands as a single file", func(t *testing.T) {
		require.NoError(t, backend.Write(ctx, "rows", `[1,2]`))

		data, err := os.ReadFile(filepath.Join(dir, "rows.json"))
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, entry := range entries {
			assert.NotContains(t, entry.Name(), ".tmp-", "temp file left behind")
		}
	})

	t.Run("exists and delete", func(t *testing.T) {
		exists, err := backend.Exists(ctx, "settings")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, backend.Delete(ctx, "settings"))

		exists, err = backend.Exists(ctx, "settings")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete absent record is a no-op", func(t *testing.T) {
		assert.NoError(t, backend.Delete(ctx, "never-written"))
	})

	t.Run("rejects keys with path separators", func(t *testing.T) {
		for _, key := range []string{"", "a/b", `a\b`, "../escape"} {
			err := backend.Write(ctx, key, "x")
			assert.ErrorIs(t, err, storage.ErrInvalidKey, "key %q", key)
		}
	})
}
