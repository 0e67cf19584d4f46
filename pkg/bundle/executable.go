package bundle

import "github.com/parcelhq/appbundle/internal/fsutil"

// PlaceExecutable copies the built product into the bundle. The destination
// directory is guaranteed by the scaffolder; a missing source artifact is a
// hard failure, never a silent skip.
func PlaceExecutable(sourceArtifact, destinationPath string) error {
	if err := fsutil.CopyFile(sourceArtifact, destinationPath); err != nil {
		return &CopyError{Source: sourceArtifact, Destination: destinationPath, Err: err}
	}
	return nil
}
