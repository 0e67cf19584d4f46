package bundle

import (
	"fmt"
	"path/filepath"

	"github.com/parcelhq/appbundle/internal/fsutil"
)

// IconConverter is the conversion backend that turns a source image into an
// icns container at the destination path.
type IconConverter interface {
	ConvertPNG(source, destination string) error
}

// ResolveIcon places the app icon at Resources/AppIcon.icns. An empty source
// path is a no-op success. Dispatch is on the exact, case-sensitive file
// extension: .icns files are copied verbatim, .png files go through the
// converter, anything else fails before any I/O happens.
func ResolveIcon(iconSourcePath, resourcesDir string, converter IconConverter) error {
	if iconSourcePath == "" {
		return nil
	}

	destination := filepath.Join(resourcesDir, "AppIcon.icns")

	switch filepath.Ext(iconSourcePath) {
	case ".icns":
		if err := fsutil.CopyFile(iconSourcePath, destination); err != nil {
			return &IconError{Path: iconSourcePath, Err: &CopyError{
				Source:      iconSourcePath,
				Destination: destination,
				Err:         err,
			}}
		}
		return nil
	case ".png":
		if err := converter.ConvertPNG(iconSourcePath, destination); err != nil {
			return &IconError{Path: iconSourcePath, Err: err}
		}
		return nil
	default:
		return &IconError{Path: iconSourcePath, Err: fmt.Errorf(
			"%w: %s (expected .icns or .png)", ErrUnsupportedIcon, iconSourcePath)}
	}
}
