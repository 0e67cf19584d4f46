package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyResources(t *testing.T) {
	productsDir := t.TempDir()
	resourcesDir := t.TempDir()

	// A resource bundle with a nested directory.
	bundleDir := filepath.Join(productsDir, "App_App.bundle")
	require.NoError(t, os.MkdirAll(filepath.Join(bundleDir, "Assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bundleDir, "Assets", "data.json"), []byte("{}"), 0o644))

	// A .resources directory and things that must be skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(productsDir, "Lib.resources"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(productsDir, "Modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(productsDir, "App"), []byte("bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(productsDir, "notes.bundle"), []byte("a file, not a bundle"), 0o644))

	require.NoError(t, Copier{}.CopyResources(productsDir, resourcesDir))

	assert.FileExists(t, filepath.Join(resourcesDir, "App_App.bundle", "Assets", "data.json"))
	assert.DirExists(t, filepath.Join(resourcesDir, "Lib.resources"))
	assert.NoDirExists(t, filepath.Join(resourcesDir, "Modules"))
	assert.NoFileExists(t, filepath.Join(resourcesDir, "App"))
	assert.NoFileExists(t, filepath.Join(resourcesDir, "notes.bundle"))
}

func TestCopyResourcesMissingProductsDir(t *testing.T) {
	err := Copier{}.CopyResources(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	assert.Error(t, err)
}
