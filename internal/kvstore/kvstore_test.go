package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicOperations(t *testing.T) {
	store, err := NewKVStore(":memory:")
	require.NoError(t, err, "Failed to create kv store")
	defer store.Close()

	// A key that was never written is not an error.
	value, err := store.Get("achievements.v1")
	assert.NoError(t, err)
	assert.Nil(t, value)

	err = store.Put("achievements.v1", []byte(`[{"id":"first_scan"}]`))
	assert.NoError(t, err)

	value, err = store.Get("achievements.v1")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"first_scan"}]`), value)
}

func TestPutOverwrites(t *testing.T) {
	store, err := NewKVStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("key", []byte("one")))
	require.NoError(t, store.Put("key", []byte("two")))

	value, err := store.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestDelete(t *testing.T) {
	store, err := NewKVStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("key", []byte("value")))
	require.NoError(t, store.Delete("key"))

	value, err := store.Get("key")
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestKeysAreIndependent(t *testing.T) {
	store, err := NewKVStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("a", []byte("1")))
	require.NoError(t, store.Put("b", []byte("2")))

	a, err := store.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), a)

	b, err := store.Get("b")
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), b)
}
