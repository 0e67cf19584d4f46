// Package plist encodes bundle Info.plist documents. It generates the
// CFBundle defaults from the forwarded configuration fields and merges any
// configured extra entries over them.
package plist

import (
	"fmt"
	"os"

	"howett.net/plist"

	"github.com/parcelhq/appbundle/pkg/bundle"
)

// Encoder writes Info.plist documents in XML plist format. It implements
// bundle.MetadataEncoder.
type Encoder struct{}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeInfoPlist writes the metadata document for one app to path.
func (e *Encoder) EncodeInfoPlist(path string, spec bundle.InfoPlistSpec) error {
	entries := e.entries(spec)

	data, err := plist.MarshalIndent(entries, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("encoding plist: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// entries builds the full plist dictionary: generated defaults first, then
// the configured extra entries, which win on collision.
func (e *Encoder) entries(spec bundle.InfoPlistSpec) map[string]any {
	entries := map[string]any{
		"CFBundleInfoDictionaryVersion": "6.0",
		"CFBundlePackageType":           "APPL",
		"CFBundleName":                  spec.AppName,
		"CFBundleDisplayName":           spec.AppName,
		"CFBundleExecutable":            spec.AppName,
		"CFBundleIdentifier":            spec.Identifier,
		"CFBundleVersion":               spec.Version,
		"CFBundleShortVersionString":    spec.Version,
		"CFBundleIconFile":              "AppIcon",
		"CFBundleSupportedPlatforms":    []string{spec.Platform.SDKName()},
	}

	if spec.Category != "" {
		entries["LSApplicationCategoryType"] = spec.Category
	}

	if spec.MinimumOSVersion != "" {
		switch spec.Platform {
		case bundle.PlatformIOS:
			entries["MinimumOSVersion"] = spec.MinimumOSVersion
		default:
			entries["LSMinimumSystemVersion"] = spec.MinimumOSVersion
		}
	}
	if spec.Platform == bundle.PlatformIOS {
		entries["LSRequiresIPhoneOS"] = true
	}

	for key, value := range spec.ExtraEntries {
		entries[key] = value
	}
	return entries
}
