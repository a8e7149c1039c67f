package confkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDotenvCandidates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
	nested := filepath.Join(root, "cmd", "mission")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	// Resolve symlinks in the temp dir so paths compare equal to Getwd.
	wd, err := os.Getwd()
	require.NoError(t, err)
	realRoot := filepath.Dir(filepath.Dir(wd))

	assert.Equal(t, []string{
		filepath.Join(wd, ".env"),
		filepath.Join(realRoot, "cmd", ".env"),
		filepath.Join(realRoot, ".env"),
	}, dotenvCandidates())
}

func TestFileExists(t *testing.T) {
	assert.False(t, fileExists(""))
	assert.False(t, fileExists(filepath.Join(t.TempDir(), "missing")))

	p := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	assert.True(t, fileExists(p))
}
