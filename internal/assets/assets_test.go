package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_Lookup(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "images"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "sounds"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "images", "cat.png"), []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "sounds", "cat.mp3"), []byte("mp3"), 0o644))

	lib := NewLibrary(dataDir)

	path, ok := lib.Image("CAT")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dataDir, "images", "cat.png"), path)

	path, ok = lib.Audio("cat")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dataDir, "sounds", "cat.mp3"), path)

	_, ok = lib.Image("dog")
	assert.False(t, ok)
	_, ok = lib.Audio("dog")
	assert.False(t, ok)
}
