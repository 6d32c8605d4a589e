package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("convert.endianness", "big"))
	require.NoError(t, store.Set("convert.depth", 64))
	require.NoError(t, store.Set("convert.trim_checksum", true))

	val, ok := store.Get("convert.endianness")
	assert.True(t, ok)
	assert.Equal(t, "big", val)
	assert.Equal(t, "big", store.GetString("convert.endianness"))
	assert.Equal(t, 64, store.GetInt("convert.depth"))
	assert.True(t, store.GetBool("convert.trim_checksum"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("k", 3.5))

	assert.Equal(t, "", store.GetString("k"))
	assert.Equal(t, 0, store.GetInt("k"))
	assert.False(t, store.GetBool("k"))
}

func TestConfigStore_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, store.GetInt("missing"))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
