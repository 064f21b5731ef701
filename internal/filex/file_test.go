package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "inkwell", "state.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	// idempotent
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("state.db"))
}

func TestEnsureParentDir_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "state.db"))
	require.Error(t, err)
}

func TestInspect(t *testing.T) {
	tmp := t.TempDir()
	png := filepath.Join(tmp, "cover.png")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n0000"), 0o600))

	info, err := Inspect(png)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", info.Name)
	assert.Equal(t, int64(12), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	noext := filepath.Join(tmp, "cover")
	require.NoError(t, os.WriteFile(noext, []byte("GIF89a......"), 0o600))
	info, err = Inspect(noext)
	require.NoError(t, err)
	assert.Equal(t, "image/gif", info.ContentType)

	_, err = Inspect(filepath.Join(tmp, "missing.png"))
	require.Error(t, err)

	_, err = Inspect(tmp)
	require.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentType("a.JPG", nil))
	assert.Equal(t, "image/webp", ContentType("a.webp", nil))
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("notes", []byte("hello")))
}
