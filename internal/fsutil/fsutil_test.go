package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFilePreservesMode(t *testing.T) {
	source := filepath.Join(t.TempDir(), "src")
	destination := filepath.Join(t.TempDir(), "dst")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0o755))

	require.NoError(t, CopyFile(source, destination))

	data, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(destination)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestCopyDir(t *testing.T) {
	source := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(source, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(source, "sub", "file.txt"), []byte("x"), 0o644))
	if runtime.GOOS != "windows" {
		require.NoError(t, os.Symlink("sub/file.txt", filepath.Join(source, "link")))
	}

	destination := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyDir(source, destination))

	assert.FileExists(t, filepath.Join(destination, "sub", "file.txt"))
	if runtime.GOOS != "windows" {
		target, err := os.Readlink(filepath.Join(destination, "link"))
		require.NoError(t, err)
		assert.Equal(t, "sub/file.txt", target)
	}
}

func TestCopyDirRejectsFile(t *testing.T) {
	source := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0o644))

	err := CopyDir(source, filepath.Join(t.TempDir(), "copy"))
	assert.Error(t, err)
}
