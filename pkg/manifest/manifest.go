// Package manifest decodes dumped package manifests. The bundler consults a
// manifest to resolve an app's minimum OS versions when the configuration
// leaves them unset.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Manifest is the decoded manifest document.
type Manifest struct {
	Package Package `json:"package"`
}

// Package describes the source package: a display name and the minimum
// version the package supports per platform.
type Package struct {
	Name      string                `json:"name"`
	Platforms []PlatformRequirement `json:"platforms"`
}

// PlatformRequirement pairs a platform with the minimum supported version.
type PlatformRequirement struct {
	Platform PlatformName `json:"platform"`
	Version  string       `json:"version"`
}

// PlatformName wraps the platform's canonical manifest name.
type PlatformName struct {
	Name string `json:"name"`
}

// Decode parses a manifest document from r.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("manifest has no package name")
	}
	return &m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// MinimumVersion returns the minimum supported version for the named
// platform. The second return is false when the manifest does not mention
// the platform.
func (m *Manifest) MinimumVersion(platformName string) (string, bool) {
	for _, req := range m.Package.Platforms {
		if req.Platform.Name == platformName {
			return req.Version, true
		}
	}
	return "", false
}
