package bundle

import (
	"errors"
	"fmt"
)

// ErrUnsupportedIcon marks icon sources whose extension is neither .icns nor
// .png. It is returned before any I/O is attempted.
var ErrUnsupportedIcon = errors.New("invalid icon file")

// ScaffoldError reports a failure to delete or create part of the bundle
// skeleton.
type ScaffoldError struct {
	Path string
	Err  error
}

func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("scaffolding bundle at %s: %v", e.Path, e.Err)
}

func (e *ScaffoldError) Unwrap() error { return e.Err }

// CopyError reports a failed file copy, carrying both endpoints.
type CopyError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// MetadataError reports a failure writing the signature file or encoding the
// structured metadata document.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("writing bundle metadata at %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error { return e.Err }

// IconError reports a failed icon resolution: an unsupported extension, a
// verbatim-copy I/O error, or a conversion backend failure.
type IconError struct {
	Path string
	Err  error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("resolving icon %s: %v", e.Path, e.Err)
}

func (e *IconError) Unwrap() error { return e.Err }

// StepError wraps the first failure the assembly pipeline encountered,
// naming the step that produced it. Later steps never ran.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("bundle step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
