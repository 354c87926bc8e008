package badwords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilter_Contains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Damn", "spam"]`), 0o644))

	f := Load(path, zap.NewNop())

	assert.True(t, f.Contains("damn"))
	assert.True(t, f.Contains("SPAM"))
	assert.False(t, f.Contains("cat"))
}

func TestFilter_MissingFile(t *testing.T) {
	f := Load(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
	assert.False(t, f.Contains("anything"))
}

func TestFilter_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad_words.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	f := Load(path, zap.NewNop())
	assert.False(t, f.Contains("anything"))
}
