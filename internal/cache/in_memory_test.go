package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Run("set, get, del", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, time.Minute)

		err := store.Set("tx-1", []byte("confirmed"), time.Minute)
		require.NoError(t, err)

		value, err := store.Get("tx-1")
		require.NoError(t, err)
		require.Equal(t, []byte("confirmed"), value)

		err = store.Del("tx-1")
		require.NoError(t, err)

		_, err = store.Get("tx-1")
		require.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("get missing key", func(t *testing.T) {
		store := NewMemoryStore(time.Minute, time.Minute)

		_, err := store.Get("unknown")
		require.ErrorIs(t, err, ErrCacheNotFound)
	})
}
