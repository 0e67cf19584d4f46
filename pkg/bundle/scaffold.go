package bundle

import (
	"os"
	"path/filepath"
)

// Scaffold creates the bundle's empty directory skeleton. Anything already
// present at the bundle root, file or directory, is removed first, so a
// repeated run always starts from the same empty skeleton. The executable's
// parent directory is part of the skeleton: on the nested layout it is a
// separate MacOS/ directory, on the flat layout it is the bundle root.
func Scaffold(layout Layout) error {
	if err := os.RemoveAll(layout.Root()); err != nil {
		return &ScaffoldError{Path: layout.Root(), Err: err}
	}

	dirs := []string{
		filepath.Dir(layout.ExecutablePath()),
		layout.ResourcesDir(),
		layout.LibrariesDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ScaffoldError{Path: dir, Err: err}
		}
	}
	return nil
}
