// Package resources copies resource bundles produced by the build into an
// app bundle's Resources directory.
package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/parcelhq/appbundle/internal/fsutil"
)

// bundle directory suffixes recognized in the products directory.
var bundleSuffixes = []string{".bundle", ".resources"}

// Copier copies resource bundle directories. It implements
// bundle.ResourceCopier.
type Copier struct {
	Logger hclog.Logger
}

// CopyResources scans the products directory for resource bundle directories
// and copies each tree into the Resources directory, keeping its name.
func (c Copier) CopyResources(productsDir, resourcesDir string) error {
	logger := c.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	entries, err := os.ReadDir(productsDir)
	if err != nil {
		return fmt.Errorf("reading products directory %s: %w", productsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isResourceBundle(entry.Name()) {
			continue
		}

		source := filepath.Join(productsDir, entry.Name())
		destination := filepath.Join(resourcesDir, entry.Name())
		logger.Debug("copying resource bundle", "bundle", entry.Name())
		if err := fsutil.CopyDir(source, destination); err != nil {
			return fmt.Errorf("copying resource bundle %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func isResourceBundle(name string) bool {
	for _, suffix := range bundleSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
