package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldCreatesSkeleton(t *testing.T) {
	outputDir := t.TempDir()
	layout := NewLayout(outputDir, "App", PlatformIOS)

	require.NoError(t, Scaffold(layout))

	assert.DirExists(t, layout.ResourcesDir())
	assert.DirExists(t, layout.LibrariesDir())
}

func TestScaffoldCreatesExecutableParent(t *testing.T) {
	testCases := []struct {
		name     string
		platform Platform
	}{
		{name: "macOS has a MacOS directory", platform: PlatformMacOS},
		{name: "iOS executable sits at the root", platform: PlatformIOS},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			layout := NewLayout(t.TempDir(), "App", tc.platform)
			require.NoError(t, Scaffold(layout))

			assert.DirExists(t, filepath.Dir(layout.ExecutablePath()))

			// The scaffold is enough for the next step to place the
			// executable.
			require.NoError(t, os.WriteFile(layout.ExecutablePath(), []byte("bin"), 0o755))
		})
	}
}

func TestScaffoldReplacesExistingBundle(t *testing.T) {
	outputDir := t.TempDir()
	layout := NewLayout(outputDir, "App", PlatformIOS)

	require.NoError(t, Scaffold(layout))
	leftover := filepath.Join(layout.ResourcesDir(), "leftover.txt")
	require.NoError(t, os.WriteFile(leftover, []byte("x"), 0o644))

	// Second scaffold yields the same empty skeleton.
	require.NoError(t, Scaffold(layout))
	assert.NoFileExists(t, leftover)
	assert.DirExists(t, layout.ResourcesDir())
	assert.DirExists(t, layout.LibrariesDir())

	entries, err := os.ReadDir(layout.ResourcesDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScaffoldReplacesPlainFile(t *testing.T) {
	outputDir := t.TempDir()
	layout := NewLayout(outputDir, "App", PlatformMacOS)

	// A plain file squatting on the bundle path is removed too.
	require.NoError(t, os.WriteFile(layout.Root(), []byte("not a bundle"), 0o644))

	require.NoError(t, Scaffold(layout))
	assert.DirExists(t, layout.ResourcesDir())
}
