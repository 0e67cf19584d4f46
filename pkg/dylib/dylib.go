// Package dylib copies dynamic libraries produced by the build into an app
// bundle's Libraries directory.
package dylib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/parcelhq/appbundle/internal/fsutil"
)

// Copier copies dynamic libraries. It implements bundle.LibraryCopier.
type Copier struct {
	Logger hclog.Logger
}

// CopyLibraries copies every .dylib in the products directory into the
// Libraries directory. A products directory without dylibs is a success.
func (c Copier) CopyLibraries(productsDir, librariesDir string) error {
	logger := c.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	entries, err := os.ReadDir(productsDir)
	if err != nil {
		return fmt.Errorf("reading products directory %s: %w", productsDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".dylib") {
			continue
		}

		source := filepath.Join(productsDir, entry.Name())
		destination := filepath.Join(librariesDir, entry.Name())
		logger.Debug("copying dynamic library", "library", entry.Name())
		if err := fsutil.CopyFile(source, destination); err != nil {
			return fmt.Errorf("copying library %s: %w", entry.Name(), err)
		}
	}
	return nil
}
