package guard_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardstore/pkg/environment"
	"github.com/dmitrymomot/guardstore/pkg/guard"
	"github.com/dmitrymomot/guardstore/pkg/logger"
	"github.com/dmitrymomot/guardstore/pkg/storage"
)

// failingBackend simulates a medium that errors on every operation, e.g. a
// full disk or an unreachable redis.
type failingBackend struct{}

var errMedium = errors.New("medium unavailable")

func (failingBackend) Read(ctx context.Context, key string) (string, bool, error) {
	return "", false, errMedium
}
func (failingBackend) Write(ctx context.Context, key, value string) error { return errMedium }
func (failingBackend) Delete(ctx context.Context, key string) error       { return errMedium }
func (failingBackend) Exists(ctx context.Context, key string) (bool, error) {
	return false, errMedium
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario: script tag stripped from object field", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		ok := store.Set(ctx, guard.KeyRows, map[string]any{
			"name": "<script>alert(1)</script>Normal Text",
		})
		require.True(t, ok)

		value, found := store.Get(ctx, guard.KeyRows)
		require.True(t, found)
		assert.Equal(t, map[string]any{"name": "Normal Text"}, value)
	})

	t.Run("scenario: javascript scheme stripped from link", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeyRows, map[string]any{
			"link": "javascript:alert(1)",
		}))

		value, found := store.Get(ctx, guard.KeyRows)
		require.True(t, found)
		assert.Equal(t, map[string]any{"link": "alert(1)"}, value)
	})

	t.Run("scenario: event handler stripped inside markup", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeyRows, map[string]any{
			"html": `<div onclick="alert(1)">Click me</div>`,
		}))

		value, found := store.Get(ctx, guard.KeyRows)
		require.True(t, found)

		html, ok := value.(map[string]any)["html"].(string)
		require.True(t, ok)
		assert.NotContains(t, strings.ToLower(html), "onclick=")
		assert.Contains(t, html, "Click me")
	})

	t.Run("scalar values round trip", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeyDarkMode, true))

		value, found := store.Get(ctx, guard.KeyDarkMode)
		require.True(t, found)
		assert.Equal(t, true, value)
	})

	t.Run("numbers come back as float64", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeySettings, map[string]any{"fontSize": 14}))

		value, found := store.Get(ctx, guard.KeySettings)
		require.True(t, found)
		assert.Equal(t, map[string]any{"fontSize": float64(14)}, value)
	})

	t.Run("multibyte content round trips intact", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeyHistory, []any{
			"Ⱥ<script>a</script>entry",
			"日本語",
		}))

		value, found := store.Get(ctx, guard.KeyHistory)
		require.True(t, found)
		assert.Equal(t, []any{"Ⱥentry", "日本語"}, value)
	})

	t.Run("missing record reads as absent", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		_, found := store.Get(ctx, guard.KeyHistory)
		assert.False(t, found)
	})

	t.Run("set overwrites previous record", func(t *testing.T) {
		store := guard.New(storage.NewMemoryBackend())

		require.True(t, store.Set(ctx, guard.KeyLastPreset, "first"))
		require.True(t, store.Set(ctx, guard.KeyLastPreset, "second"))

		value, found := store.Get(ctx, guard.KeyLastPreset)
		require.True(t, found)
		assert.Equal(t, "second", value)
	})
}

func TestStore_AllowList(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := guard.New(backend)

	malicious := guard.Key("maliciousKey")

	assert.False(t, store.Set(ctx, malicious, "payload"))
	assert.False(t, store.Remove(ctx, malicious))

	_, found := store.Get(ctx, malicious)
	assert.False(t, found)

	// The medium was never touched under the rejected key.
	_, exists, err := backend.Read(ctx, "maliciousKey")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_SizeGuard(t *testing.T) {
	ctx := context.Background()
	store := guard.New(storage.NewMemoryBackend())

	require.True(t, store.Set(ctx, guard.KeyRows, "small"))

	// Serialization adds two quote characters, pushing this over the bound.
	oversized := strings.Repeat("a", guard.MaxRecordLen)
	assert.False(t, store.Set(ctx, guard.KeyRows, oversized))

	// The previous record is untouched.
	value, found := store.Get(ctx, guard.KeyRows)
	require.True(t, found)
	assert.Equal(t, "small", value)
}

func TestStore_CorruptedRecord(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := guard.New(backend)

	require.NoError(t, backend.Write(ctx, "rows", "{not valid json"))

	_, found := store.Get(ctx, guard.KeyRows)
	assert.False(t, found)

	// The corrupt record is left in place, not auto-repaired.
	raw, exists, err := backend.Read(ctx, "rows")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "{not valid json", raw)
}

func TestStore_SanitizesOnRead(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := guard.New(backend)

	// A record written by older code or another process, before sanitization.
	require.NoError(t, backend.Write(ctx, "settings", `{"banner":"<script>alert(1)</script>hello"}`))

	value, found := store.Get(ctx, guard.KeySettings)
	require.True(t, found)
	assert.Equal(t, map[string]any{"banner": "hello"}, value)
}

func TestStore_RemoveAndKeys(t *testing.T) {
	ctx := context.Background()
	store := guard.New(storage.NewMemoryBackend())

	require.True(t, store.Set(ctx, guard.KeyDarkMode, true))
	assert.Contains(t, store.Keys(ctx), guard.KeyDarkMode)

	require.True(t, store.Remove(ctx, guard.KeyDarkMode))
	assert.NotContains(t, store.Keys(ctx), guard.KeyDarkMode)

	// Removing an absent record still succeeds.
	assert.True(t, store.Remove(ctx, guard.KeyDarkMode))
}

func TestStore_KeysOrder(t *testing.T) {
	ctx := context.Background()
	store := guard.New(storage.NewMemoryBackend())

	// Written out of allow-list order on purpose.
	require.True(t, store.Set(ctx, guard.KeyLastPreset, "p"))
	require.True(t, store.Set(ctx, guard.KeyRows, []any{}))
	require.True(t, store.Set(ctx, guard.KeyPresets, []any{"a"}))

	assert.Equal(t, []guard.Key{guard.KeyRows, guard.KeyPresets, guard.KeyLastPreset}, store.Keys(ctx))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	store := guard.New(backend)

	require.True(t, store.Set(ctx, guard.KeyRows, []any{"r"}))
	require.True(t, store.Set(ctx, guard.KeyDarkMode, true))

	// Unrelated code sharing the medium keeps its own keys.
	require.NoError(t, backend.Write(ctx, "unrelated", "kept"))

	assert.True(t, store.Clear(ctx))

	assert.Empty(t, store.Keys(ctx))

	raw, exists, err := backend.Read(ctx, "unrelated")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "kept", raw)
}

func TestStore_MediumFailure(t *testing.T) {
	ctx := context.Background()
	store := guard.New(failingBackend{})

	assert.False(t, store.Set(ctx, guard.KeyRows, "v"))
	assert.False(t, store.Remove(ctx, guard.KeyRows))
	assert.False(t, store.Clear(ctx))
	assert.Empty(t, store.Keys(ctx))

	_, found := store.Get(ctx, guard.KeyRows)
	assert.False(t, found)
}

func TestStore_Diagnostics(t *testing.T) {
	newStore := func(buf *bytes.Buffer) *guard.Store {
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		return guard.New(storage.NewMemoryBackend(), guard.WithLogger(log))
	}

	t.Run("emitted in development", func(t *testing.T) {
		var buf bytes.Buffer
		store := newStore(&buf)
		ctx := environment.WithContext(context.Background(), string(environment.Development))

		store.Set(ctx, guard.Key("maliciousKey"), "v")

		assert.Contains(t, buf.String(), "rejected key")
		assert.Contains(t, buf.String(), "maliciousKey")
	})

	t.Run("silent in production", func(t *testing.T) {
		var buf bytes.Buffer
		store := newStore(&buf)
		ctx := environment.WithContext(context.Background(), string(environment.Production))

		store.Set(ctx, guard.Key("maliciousKey"), "v")

		assert.Empty(t, buf.String())
	})

	t.Run("silent without an environment signal", func(t *testing.T) {
		var buf bytes.Buffer
		store := newStore(&buf)

		store.Set(context.Background(), guard.Key("maliciousKey"), "v")

		assert.Empty(t, buf.String())
	})
}

func TestAllowedKeys(t *testing.T) {
	keys := guard.AllowedKeys()

	assert.Equal(t, []guard.Key{
		guard.KeyRows,
		guard.KeyDarkMode,
		guard.KeyPresets,
		guard.KeyHistory,
		guard.KeySettings,
		guard.KeyLastPreset,
	}, keys)

	// The returned slice is a copy; mutating it does not affect the store.
	keys[0] = guard.Key("tampered")
	assert.Equal(t, guard.KeyRows, guard.AllowedKeys()[0])

	for _, k := range guard.AllowedKeys() {
		assert.True(t, k.Allowed(), "key %s", k)
	}
	assert.False(t, guard.Key("maliciousKey").Allowed())
	assert.False(t, guard.Key("").Allowed())
}
