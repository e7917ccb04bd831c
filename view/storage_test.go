package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("k", "v1")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	s.Set("k", "v2")
	v, _ = s.Get("k")
	assert.Equal(t, "v2", v)
	assert.Equal(t, 1, s.Len())
}

func TestFileStorageMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestFileStoragePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	s.Set("Counter#default.count", "BQ==")
	s.Set("App#default.theme", "2aRkYXJr")
	require.NoError(t, s.Err())

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	v, ok := reopened.Get("Counter#default.count")
	require.True(t, ok)
	assert.Equal(t, "BQ==", v)

	v, ok = reopened.Get("App#default.theme")
	require.True(t, ok)
	assert.Equal(t, "2aRkYXJr", v)
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStorage(path)
	assert.Error(t, err)
}

func TestFileStorageSetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	s.Set("k", "a")
	s.Set("k", "b")

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	v, ok := reopened.Get("k")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}
