package bundle

import "os"

// pkgInfoContents is the fixed bundle-type/creator-code marker: "APPL"
// followed by four placeholder bytes. It is identical for every app.
var pkgInfoContents = []byte{0x41, 0x50, 0x50, 0x4c, 0x3f, 0x3f, 0x3f, 0x3f}

// InfoPlistSpec carries the configuration fields forwarded to the metadata
// encoder.
type InfoPlistSpec struct {
	AppName          string
	Identifier       string
	Version          string
	Category         string
	MinimumOSVersion string
	Platform         Platform
	// ExtraEntries are merged over the encoder's generated defaults;
	// on a key collision the extra entry wins.
	ExtraEntries map[string]any
}

// MetadataEncoder produces the structured metadata document (Info.plist)
// from the forwarded configuration fields.
type MetadataEncoder interface {
	EncodeInfoPlist(path string, spec InfoPlistSpec) error
}

// WriteMetadata writes the bundle's metadata files: the fixed PkgInfo
// signature file, then the Info.plist produced by the encoder. Encoder
// failures are surfaced unchanged, wrapped in a MetadataError.
func WriteMetadata(layout Layout, appName string, config AppConfiguration, encoder MetadataEncoder) error {
	if err := os.WriteFile(layout.PkgInfoPath(), pkgInfoContents, 0o644); err != nil {
		return &MetadataError{Path: layout.PkgInfoPath(), Err: err}
	}

	spec := InfoPlistSpec{
		AppName:          appName,
		Identifier:       config.Identifier,
		Version:          config.Version,
		Category:         config.Category,
		MinimumOSVersion: config.MinimumOSVersion(layout.platform),
		Platform:         layout.platform,
		ExtraEntries:     config.ExtraPlistEntries,
	}
	if err := encoder.EncodeInfoPlist(layout.InfoPlistPath(), spec); err != nil {
		return &MetadataError{Path: layout.InfoPlistPath(), Err: err}
	}
	return nil
}
