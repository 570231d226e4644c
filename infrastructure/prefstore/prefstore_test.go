package prefstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(context.Background(), ":memory:")
	assert.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key returns not found", func(t *testing.T) {
		store := newTestStore(t)

		value, found, err := store.Get(ctx, "favourites:user:1")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("set then get", func(t *testing.T) {
		store := newTestStore(t)

		err := store.Set(ctx, "favourites:user:1", `["1","2"]`)
		assert.NoError(t, err)

		value, found, err := store.Get(ctx, "favourites:user:1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `["1","2"]`, value)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "walkthrough:device:abc", "false"))
		assert.NoError(t, store.Set(ctx, "walkthrough:device:abc", "true"))

		value, found, err := store.Get(ctx, "walkthrough:device:abc")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "true", value)
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := newTestStore(t)

		assert.NoError(t, store.Set(ctx, "favourites:user:1", `["1"]`))
		assert.NoError(t, store.Set(ctx, "favourites:user:2", `["3"]`))

		value, found, err := store.Get(ctx, "favourites:user:1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `["1"]`, value)
	})
}
