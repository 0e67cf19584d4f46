package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIconNone(t *testing.T) {
	resourcesDir := t.TempDir()
	converter := &stubConverter{}

	require.NoError(t, ResolveIcon("", resourcesDir, converter))

	assert.False(t, converter.called)
	assert.NoFileExists(t, filepath.Join(resourcesDir, "AppIcon.icns"))
}

func TestResolveIconVerbatimCopy(t *testing.T) {
	sourceDir := t.TempDir()
	resourcesDir := t.TempDir()

	source := filepath.Join(sourceDir, "AppIcon.icns")
	require.NoError(t, os.WriteFile(source, []byte("icns-bytes"), 0o644))

	converter := &stubConverter{}
	require.NoError(t, ResolveIcon(source, resourcesDir, converter))

	assert.False(t, converter.called)
	data, err := os.ReadFile(filepath.Join(resourcesDir, "AppIcon.icns"))
	require.NoError(t, err)
	assert.Equal(t, []byte("icns-bytes"), data)
}

func TestResolveIconConvertsPNG(t *testing.T) {
	sourceDir := t.TempDir()
	resourcesDir := t.TempDir()

	source := filepath.Join(sourceDir, "icon.png")
	require.NoError(t, os.WriteFile(source, []byte("png"), 0o644))

	converter := &stubConverter{}
	require.NoError(t, ResolveIcon(source, resourcesDir, converter))

	require.True(t, converter.called)
	assert.Equal(t, source, converter.source)
	assert.Equal(t, filepath.Join(resourcesDir, "AppIcon.icns"), converter.destination)
}

func TestResolveIconRejectsOtherExtensions(t *testing.T) {
	testCases := []string{
		"icon.jpg",
		"icon.ICNS", // extension match is case-sensitive
		"icon.PNG",
		"icon",
		"icon.png.bak",
	}

	for _, name := range testCases {
		t.Run(name, func(t *testing.T) {
			sourceDir := t.TempDir()
			resourcesDir := t.TempDir()

			source := filepath.Join(sourceDir, name)
			require.NoError(t, os.WriteFile(source, []byte("data"), 0o644))

			converter := &stubConverter{}
			err := ResolveIcon(source, resourcesDir, converter)
			require.Error(t, err)

			var iconErr *IconError
			require.ErrorAs(t, err, &iconErr)
			assert.Equal(t, source, iconErr.Path)
			assert.ErrorIs(t, err, ErrUnsupportedIcon)

			// Rejected before any I/O: nothing written, backend not invoked.
			assert.False(t, converter.called)
			entries, readErr := os.ReadDir(resourcesDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestResolveIconMissingSource(t *testing.T) {
	resourcesDir := t.TempDir()

	err := ResolveIcon(filepath.Join(t.TempDir(), "gone.icns"), resourcesDir, &stubConverter{})
	require.Error(t, err)

	var iconErr *IconError
	require.ErrorAs(t, err, &iconErr)

	var copyErr *CopyError
	assert.ErrorAs(t, err, &copyErr)
}
